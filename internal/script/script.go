// Package script loads tilt scripts: timed sequences of accelerometer
// samples used to play the game without a person holding the board.
//
// A script is YAML:
//
//	name: hold-north
//	steps:
//	  - direction: N
//	    ms: 600
//	  - x: 150
//	    y: -900
//	    ms: 200
//
// Each step holds its sample for ms milliseconds (one game tick each).
// A step gives either a compass direction or raw x/y/z values in milli-g.
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tiltgame/internal/board"
)

// restZ is the z reading of a board lying flat (1 g).
const restZ int32 = 1000

// Step is one segment of a script.
type Step struct {
	Direction string `yaml:"direction,omitempty"`
	X         *int32 `yaml:"x,omitempty"`
	Y         *int32 `yaml:"y,omitempty"`
	Z         *int32 `yaml:"z,omitempty"`
	Ms        int    `yaml:"ms"`
}

// Script is a named list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Sample is a resolved accelerometer reading held for a number of ticks.
type Sample struct {
	X, Y, Z int32
	Ticks   int
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: failed to read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	return s, nil
}

// Parse parses script YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("no steps")
	}
	return &s, nil
}

// Resolve converts steps into samples. Directional steps use magnitude
// milli-g of tilt.
func (s *Script) Resolve(magnitude int32) ([]Sample, error) {
	samples := make([]Sample, 0, len(s.Steps))
	for i, step := range s.Steps {
		if step.Ms <= 0 {
			return nil, fmt.Errorf("step %d: ms must be positive, got %d", i+1, step.Ms)
		}

		sample := Sample{Z: restZ, Ticks: step.Ms}
		raw := step.X != nil || step.Y != nil || step.Z != nil

		switch {
		case step.Direction != "" && raw:
			return nil, fmt.Errorf("step %d: direction and x/y/z are mutually exclusive", i+1)
		case step.Direction != "":
			dir, err := board.ParseDirection(step.Direction)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			sample.X, sample.Y = dir.Vector(magnitude)
		default:
			if step.X != nil {
				sample.X = *step.X
			}
			if step.Y != nil {
				sample.Y = *step.Y
			}
			if step.Z != nil {
				sample.Z = *step.Z
			}
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// TotalTicks returns the script length in ticks.
func (s *Script) TotalTicks() int {
	total := 0
	for _, step := range s.Steps {
		total += step.Ms
	}
	return total
}

// Player replays samples one tick at a time.
type Player struct {
	samples []Sample
	idx     int
	used    int
}

// NewPlayer creates a player positioned at the first sample.
func NewPlayer(samples []Sample) *Player {
	return &Player{samples: samples}
}

// Next returns the sample for the next tick. ok is false once the script
// has run out.
func (p *Player) Next() (x, y, z int32, ok bool) {
	for p.idx < len(p.samples) && p.used >= p.samples[p.idx].Ticks {
		p.idx++
		p.used = 0
	}
	if p.idx >= len(p.samples) {
		return 0, 0, 0, false
	}
	s := p.samples[p.idx]
	p.used++
	return s.X, s.Y, s.Z, true
}
