package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Serializer runs functions one at a time.
type Serializer interface {
	Do(fn func())
}

// REPL reads command lines and dispatches them to a Registry.
type REPL struct {
	Registry *Registry
	In       io.Reader
	Out      io.Writer

	// Prompt is written before each line when non-empty.
	Prompt string

	// Guard, if set, runs each command so that commands never overlap
	// with other users of the same state (e.g. a tick driver).
	Guard Serializer
}

// Run processes lines until EOF, "quit"/"exit", or ctx is cancelled.
// A cancelled context is not reported as an error.
//
// Run returns without waiting for the reader goroutine. If In blocks (stdin
// after "quit"), that goroutine stays parked in Scan until In is closed or
// the process exits; it never delivers another line.
func (r *REPL) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(r.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		r.prompt()

		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("console: read input: %w", err)
			}
			return nil
		case line := <-lines:
			if quit := r.handle(line); quit {
				return nil
			}
		}
	}
}

func (r *REPL) prompt() {
	if r.Prompt != "" {
		fmt.Fprint(r.Out, r.Prompt)
	}
}

// handle runs a single line. Returns true when the user asked to quit.
func (r *REPL) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		name := ""
		if len(fields) > 1 {
			name = fields[1]
		}
		r.locked(func() {
			if err := r.Registry.Help(name, r.Out); err != nil {
				r.reportError(err)
			}
		})
		return false
	}

	r.locked(func() {
		if err := r.Registry.Dispatch(line, r.Out); err != nil {
			r.reportError(err)
		}
	})
	return false
}

func (r *REPL) locked(fn func()) {
	if r.Guard != nil {
		r.Guard.Do(fn)
		return
	}
	fn()
}

func (r *REPL) reportError(err error) {
	if errors.Is(err, ErrUnknownCommand) {
		fmt.Fprintf(r.Out, "%v (type 'help' for a list)\n", err)
		return
	}
	fmt.Fprintf(r.Out, "error: %v\n", err)
}
