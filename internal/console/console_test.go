package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
)

// recorder is a command handler that remembers how it was called.
type recorder struct {
	actions []Action
	args    [][]uint32
}

func (r *recorder) handle(action Action, args *Args, out io.Writer) {
	r.actions = append(r.actions, action)
	if action == ActionLongHelp {
		fmt.Fprintln(out, "long help for rec")
		return
	}
	if action != ActionRun {
		return
	}
	var vals []uint32
	for args.Remaining() > 0 {
		v, err := args.FetchUint32()
		if err != nil {
			v = 999
		}
		vals = append(vals, v)
	}
	r.args = append(r.args, vals)
}

func newTestRegistry(rec *recorder) *Registry {
	reg := NewRegistry()
	reg.Register(Command{Name: "rec", Usage: "<a> <b>", Short: "Record calls", Handler: rec.handle})
	reg.Register(Command{Name: "noop", Handler: func(Action, *Args, io.Writer) {}})
	return reg
}

func TestFetchUint32(t *testing.T) {
	tests := []struct {
		word     string
		expected uint32
		wantErr  bool
	}{
		{"0", 0, false},
		{"500", 500, false},
		{"0x10", 16, false},
		{"0XfF", 255, false},
		{"010", 10, false},
		{"4294967295", 4294967295, false},
		{"4294967296", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"0x", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got, err := NewArgs(tc.word).FetchUint32()
			if (err != nil) != tc.wantErr {
				t.Fatalf("FetchUint32(%q) error = %v, wantErr %v", tc.word, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("FetchUint32(%q) = %d, expected %d", tc.word, got, tc.expected)
			}
		})
	}
}

func TestFetchConsumesBadWords(t *testing.T) {
	args := NewArgs("x", "7")

	if _, err := args.FetchUint32(); err == nil {
		t.Fatal("expected error for non-numeric word")
	}
	v, err := args.FetchUint32()
	if err != nil || v != 7 {
		t.Errorf("second fetch = %d, %v; expected 7, nil", v, err)
	}
	if _, err := args.FetchUint32(); !errors.Is(err, ErrNoArgument) {
		t.Errorf("fetch past end error = %v, expected ErrNoArgument", err)
	}
}

func TestRegistryRegisterPanics(t *testing.T) {
	noop := func(Action, *Args, io.Writer) {}
	tests := []struct {
		name string
		cmd  Command
	}{
		{"empty name", Command{Name: "", Handler: noop}},
		{"space in name", Command{Name: "a b", Handler: noop}},
		{"nil handler", Command{Name: "x"}},
		{"duplicate", Command{Name: "dup", Handler: noop}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.Register(Command{Name: "dup", Handler: noop})

			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			reg.Register(tc.cmd)
		})
	}
}

func TestRegistryListSorted(t *testing.T) {
	reg := newTestRegistry(&recorder{})
	list := reg.List()
	if len(list) != 2 || list[0].Name != "noop" || list[1].Name != "rec" {
		t.Errorf("List() = %v, expected [noop rec]", list)
	}
}

func TestDispatch(t *testing.T) {
	rec := &recorder{}
	reg := newTestRegistry(rec)
	var out bytes.Buffer

	if err := reg.Dispatch("rec 1 0x2 zz", &out); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if err := reg.Dispatch("   ", &out); err != nil {
		t.Fatalf("blank line should be ignored, got %v", err)
	}
	if err := reg.Dispatch("missing 1", &out); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unknown command error = %v, expected ErrUnknownCommand", err)
	}

	if len(rec.args) != 1 {
		t.Fatalf("handler called %d times, expected 1", len(rec.args))
	}
	got := rec.args[0]
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 999 {
		t.Errorf("args = %v, expected [1 2 999]", got)
	}
}

func TestHelp(t *testing.T) {
	rec := &recorder{}
	reg := newTestRegistry(rec)

	var out bytes.Buffer
	if err := reg.Help("", &out); err != nil {
		t.Fatalf("Help error: %v", err)
	}
	if !strings.Contains(out.String(), "rec <a> <b>  Record calls") {
		t.Errorf("help listing missing usage line:\n%s", out.String())
	}
	if len(rec.actions) != 1 || rec.actions[0] != ActionShortHelp {
		t.Errorf("listing should call handler in short-help mode, got %v", rec.actions)
	}

	out.Reset()
	if err := reg.Help("rec", &out); err != nil {
		t.Fatalf("Help(rec) error: %v", err)
	}
	if out.String() != "long help for rec\n" {
		t.Errorf("long help output = %q", out.String())
	}

	if err := reg.Help("nope", &out); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Help(nope) error = %v, expected ErrUnknownCommand", err)
	}
}

// countingSerializer counts Do calls.
type countingSerializer struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSerializer) Do(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	fn()
}

func TestREPL(t *testing.T) {
	rec := &recorder{}
	reg := newTestRegistry(rec)
	guard := &countingSerializer{}

	in := strings.NewReader("rec 5\n\nbogus\nhelp rec\nquit\nrec 6\n")
	var out bytes.Buffer

	repl := &REPL{Registry: reg, In: in, Out: &out, Prompt: "> ", Guard: guard}
	if err := repl.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(rec.args) != 1 || rec.args[0][0] != 5 {
		t.Errorf("expected only 'rec 5' to run before quit, got %v", rec.args)
	}
	if !strings.Contains(out.String(), `unknown command "bogus"`) {
		t.Errorf("output should report unknown command:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "long help for rec") {
		t.Errorf("output should contain long help:\n%s", out.String())
	}
	if !strings.HasPrefix(out.String(), "> ") {
		t.Errorf("output should start with prompt:\n%s", out.String())
	}
	// rec 5, bogus, help rec
	if guard.calls != 3 {
		t.Errorf("guard ran %d commands, expected 3", guard.calls)
	}
}

func TestREPLStopsAtEOF(t *testing.T) {
	rec := &recorder{}
	repl := &REPL{Registry: newTestRegistry(rec), In: strings.NewReader("rec 1\nrec 2"), Out: io.Discard}

	if err := repl.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(rec.args) != 2 {
		t.Errorf("handler called %d times, expected 2", len(rec.args))
	}
}

func TestREPLStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repl := &REPL{Registry: NewRegistry(), In: pr, Out: io.Discard}
	if err := repl.Run(ctx); err != nil {
		t.Errorf("cancelled Run should return nil, got %v", err)
	}
}
