package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tiltgame/internal/board"
)

const sampleScript = `
name: north-then-raw
steps:
  - direction: N
    ms: 3
  - x: 150
    y: -900
    ms: 2
  - direction: level
    ms: 1
`

func TestParseAndResolve(t *testing.T) {
	s, err := Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if s.Name != "north-then-raw" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.TotalTicks() != 6 {
		t.Errorf("TotalTicks() = %d, expected 6", s.TotalTicks())
	}

	samples, err := s.Resolve(1000)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("got %d samples, expected 3", len(samples))
	}

	if got := board.TiltDirection(samples[0].X, samples[0].Y, board.DefaultTiltThreshold); got != board.DirN {
		t.Errorf("first sample reads as %v, expected N", got)
	}
	if samples[1].X != 150 || samples[1].Y != -900 || samples[1].Z != restZ {
		t.Errorf("raw sample = %+v", samples[1])
	}
	if samples[2].X != 0 || samples[2].Y != 0 {
		t.Errorf("level sample = %+v", samples[2])
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero ms", "steps:\n  - direction: N\n    ms: 0\n", "ms must be positive"},
		{"bad direction", "steps:\n  - direction: up\n    ms: 5\n", "unknown direction"},
		{"both forms", "steps:\n  - direction: N\n    x: 5\n    ms: 5\n", "mutually exclusive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			_, err = s.Resolve(1000)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Resolve error = %v, expected to contain %q", err, tc.want)
			}
		})
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("name: empty\n")); err == nil {
		t.Error("script without steps should be rejected")
	}
	if _, err := Parse([]byte("steps: [\n")); err == nil {
		t.Error("malformed YAML should be rejected")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte(sampleScript), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(s.Steps) != 3 {
		t.Errorf("loaded %d steps, expected 3", len(s.Steps))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestPlayer(t *testing.T) {
	p := NewPlayer([]Sample{
		{X: 1, Ticks: 2},
		{X: 2, Ticks: 0}, // skipped
		{X: 3, Ticks: 1},
	})

	var got []int32
	for {
		x, _, _, ok := p.Next()
		if !ok {
			break
		}
		got = append(got, x)
	}

	expected := []int32{1, 1, 3}
	if len(got) != len(expected) {
		t.Fatalf("played %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("tick %d: x = %d, expected %d", i, got[i], expected[i])
		}
	}

	if _, _, _, ok := p.Next(); ok {
		t.Error("exhausted player should stay exhausted")
	}
}
