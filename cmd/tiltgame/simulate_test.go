package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiltgame/internal/board"
	"github.com/vovakirdan/tiltgame/internal/config"
	"github.com/vovakirdan/tiltgame/internal/game"
	"github.com/vovakirdan/tiltgame/internal/script"
)

func newTestRig(results *[]game.Result) *rig {
	return newRig(config.DefaultConfig(), log.New(io.Discard), game.WithResultHandler(func(r game.Result) {
		*results = append(*results, r)
	}))
}

func samplesFor(t *testing.T, yaml string) []script.Sample {
	t.Helper()
	s, err := script.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	samples, err := s.Resolve(1000)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	return samples
}

func TestSimulateWin(t *testing.T) {
	var results []game.Result
	r := newTestRig(&results)

	// Level for 250 ticks, then north. Polls land on ticks 1, 101, 201, 301...
	samples := samplesFor(t, "steps:\n  - direction: level\n    ms: 250\n  - direction: N\n    ms: 2000\n")

	if err := simulate(r, script.NewPlayer(samples), startLine([]string{"500", "0", "5"})); err != nil {
		t.Fatalf("simulate error: %v", err)
	}
	if len(results) != 1 || results[0].Outcome != board.OutcomeWin {
		t.Fatalf("results = %+v, expected one win", results)
	}
	// North is first seen by the poll on tick 301; 500 ticks of hold end on tick 800
	if results[0].TicksPlayed != 800 {
		t.Errorf("won after %d ticks, expected 800", results[0].TicksPlayed)
	}
}

func TestSimulateTimeout(t *testing.T) {
	var results []game.Result
	r := newTestRig(&results)

	samples := samplesFor(t, "steps:\n  - direction: S\n    ms: 1000\n")

	if err := simulate(r, script.NewPlayer(samples), startLine([]string{"100", "0", "1"})); err != nil {
		t.Fatalf("simulate error: %v", err)
	}
	if len(results) != 1 || results[0].Outcome != board.OutcomeTimeout {
		t.Errorf("results = %+v, expected one timeout", results)
	}
}

func TestSimulateScriptTooShort(t *testing.T) {
	var results []game.Result
	r := newTestRig(&results)

	samples := samplesFor(t, "steps:\n  - direction: S\n    ms: 10\n")

	err := simulate(r, script.NewPlayer(samples), startLine(nil))
	if !errors.Is(err, errScriptExhausted) {
		t.Errorf("simulate error = %v, expected errScriptExhausted", err)
	}
}

func TestStartLine(t *testing.T) {
	if got := startLine(nil); got != "dhttGame" {
		t.Errorf("startLine(nil) = %q", got)
	}
	if got := startLine([]string{"1", "2", "3"}); got != "dhttGame 1 2 3" {
		t.Errorf("startLine(1 2 3) = %q", got)
	}
}

func TestRigConsoleCommands(t *testing.T) {
	var results []game.Result
	r := newTestRig(&results)
	var out bytes.Buffer

	if err := r.commands.Dispatch("tilt ne", &out); err != nil {
		t.Fatalf("tilt error: %v", err)
	}
	x, y, _ := r.sim.Tilt()
	if got := board.TiltDirection(x, y, board.DefaultTiltThreshold); got != board.DirNE {
		t.Errorf("tilt ne left board at %v", got)
	}

	out.Reset()
	if err := r.commands.Dispatch("tilt", &out); err != nil {
		t.Fatalf("tilt error: %v", err)
	}
	if out.String() != "tilt: NE\n" {
		t.Errorf("tilt query = %q", out.String())
	}

	out.Reset()
	r.commands.Dispatch("tilt sideways", &out)
	if !strings.Contains(out.String(), "unknown direction") {
		t.Errorf("bad tilt output = %q", out.String())
	}

	// Start a game and poll once so LED 2 (NE) lights
	r.commands.Dispatch("dhttGame 500 2 1", &out)
	r.ctrl.OnTick()

	out.Reset()
	if err := r.commands.Dispatch("leds", &out); err != nil {
		t.Fatalf("leds error: %v", err)
	}
	if out.String() != "N:. NE:* E:. SE:. S:. SW:. W:. NW:.\n" {
		t.Errorf("leds output = %q", out.String())
	}
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, "", game.Result{
		GameID:      "abc",
		Outcome:     board.OutcomeWin,
		Params:      game.Params{WinDurationMs: 500, TargetLED: 0, GameDurationSec: 5},
		TicksPlayed: 800,
	})

	for _, want := range []string{"(unnamed)", "abc", "Outcome:  win", "Played:   800 ms"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestBundledScripts(t *testing.T) {
	tests := []struct {
		file     string
		args     []string
		expected board.Outcome
	}{
		{"hold-north.yaml", nil, board.OutcomeWin},
		{"wobble.yaml", []string{"300", "0", "5"}, board.OutcomeTimeout},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			s, err := script.Load("../../scripts/" + tc.file)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			samples, err := s.Resolve(1000)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}

			var results []game.Result
			r := newTestRig(&results)
			if err := simulate(r, script.NewPlayer(samples), startLine(tc.args)); err != nil {
				t.Fatalf("simulate error: %v", err)
			}
			if len(results) != 1 || results[0].Outcome != tc.expected {
				t.Errorf("results = %+v, expected %v", results, tc.expected)
			}
		})
	}
}
