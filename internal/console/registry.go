// Package console provides the board's command table and a line-oriented
// console that dispatches to it. Commands register once at startup and are
// looked up by name for every input line.
package console

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Action tells a handler what the dispatcher wants from it.
type Action int

const (
	ActionRun       Action = iota // Execute the command
	ActionShortHelp               // Listing all commands; print nothing
	ActionLongHelp                // "help <name>"; print usage
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionRun:
		return "Run"
	case ActionShortHelp:
		return "ShortHelp"
	case ActionLongHelp:
		return "LongHelp"
	default:
		return "Unknown"
	}
}

// Handler runs a command. Output goes to out; arguments are fetched from args.
type Handler func(action Action, args *Args, out io.Writer)

// Command is a single entry in the command table.
type Command struct {
	Name    string  // Word typed at the console
	Usage   string  // Argument synopsis, e.g. "<delay_ms> <target_led>"
	Short   string  // One-line description
	Handler Handler // Invoked on dispatch
}

// UsageLine returns "name usage  short" as shown by help.
func (c Command) UsageLine() string {
	line := c.Name
	if c.Usage != "" {
		line += " " + c.Usage
	}
	if c.Short != "" {
		line += "  " + c.Short
	}
	return line
}

// ErrUnknownCommand is returned by Dispatch for names not in the table.
var ErrUnknownCommand = errors.New("console: unknown command")

// Registry maps command names to commands.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty command table.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command to the table.
// Panics if the name is empty, already registered, or has no handler.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name == "" || strings.ContainsAny(cmd.Name, " \t") {
		panic(fmt.Sprintf("console: invalid command name %q", cmd.Name))
	}
	if cmd.Handler == nil {
		panic(fmt.Sprintf("console: command %q has no handler", cmd.Name))
	}
	if _, exists := r.commands[cmd.Name]; exists {
		panic(fmt.Sprintf("console: command %q already registered", cmd.Name))
	}

	r.commands[cmd.Name] = cmd
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all registered commands, sorted by name.
func (r *Registry) List() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Dispatch splits line into words and runs the named command with the
// remaining words as arguments. Blank lines are a no-op.
func (r *Registry) Dispatch(line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, ok := r.Lookup(fields[0])
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}

	cmd.Handler(ActionRun, NewArgs(fields[1:]...), out)
	return nil
}

// Help writes help text to out. With no name it lists every command;
// otherwise it runs the named command in long-help mode.
func (r *Registry) Help(name string, out io.Writer) error {
	if name == "" {
		for _, cmd := range r.List() {
			cmd.Handler(ActionShortHelp, NewArgs(), out)
			fmt.Fprintf(out, "  %s\n", cmd.UsageLine())
		}
		return nil
	}

	cmd, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	cmd.Handler(ActionLongHelp, NewArgs(), out)
	return nil
}
