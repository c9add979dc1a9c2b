// Package config provides YAML-based configuration for the tilt game:
// board calibration, outcome animation, simulator settings, and logging.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Config is the complete tiltgame configuration.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Outcome   OutcomeConfig   `yaml:"outcome"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Log       LogConfig       `yaml:"log"`
}

// BoardConfig calibrates how accelerometer samples map to LEDs.
type BoardConfig struct {
	TiltThreshold int32 `yaml:"tilt_threshold"` // milli-g; 0 means the default
}

// OutcomeConfig shapes the end-of-game animation.
type OutcomeConfig struct {
	WinBlinks   int `yaml:"win_blinks"`
	BlinkFrames int `yaml:"blink_frames"`
}

// SimulatorConfig controls the host-side board simulation.
type SimulatorConfig struct {
	TiltMagnitude int32 `yaml:"tilt_magnitude"`
	FrameRate     int   `yaml:"frame_rate"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			TiltThreshold: 200,
		},
		Outcome: OutcomeConfig{
			WinBlinks:   3,
			BlinkFrames: 4,
		},
		Simulator: SimulatorConfig{
			TiltMagnitude: 1000,
			FrameRate:     30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// fillDefaults replaces zero values with defaults so partial files work.
// A zero in the file is indistinguishable from an absent key, so every
// field's zero value means "use the default".
func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Board.TiltThreshold == 0 {
		c.Board.TiltThreshold = d.Board.TiltThreshold
	}
	if c.Outcome.WinBlinks == 0 {
		c.Outcome.WinBlinks = d.Outcome.WinBlinks
	}
	if c.Outcome.BlinkFrames == 0 {
		c.Outcome.BlinkFrames = d.Outcome.BlinkFrames
	}
	if c.Simulator.TiltMagnitude == 0 {
		c.Simulator.TiltMagnitude = d.Simulator.TiltMagnitude
	}
	if c.Simulator.FrameRate == 0 {
		c.Simulator.FrameRate = d.Simulator.FrameRate
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// Validate checks that values are usable.
func (c Config) Validate() error {
	if c.Board.TiltThreshold < 0 {
		return fmt.Errorf("config: board.tilt_threshold must not be negative, got %d", c.Board.TiltThreshold)
	}
	if c.Outcome.WinBlinks < 0 || c.Outcome.BlinkFrames < 0 {
		return fmt.Errorf("config: outcome values must not be negative")
	}
	if c.Simulator.TiltMagnitude <= c.Board.TiltThreshold {
		return fmt.Errorf("config: simulator.tilt_magnitude (%d) must exceed board.tilt_threshold (%d)",
			c.Simulator.TiltMagnitude, c.Board.TiltThreshold)
	}
	if c.Simulator.FrameRate < 1 || c.Simulator.FrameRate > 240 {
		return fmt.Errorf("config: simulator.frame_rate must be 1-240, got %d", c.Simulator.FrameRate)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}
