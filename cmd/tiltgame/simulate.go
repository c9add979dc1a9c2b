package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltgame/internal/game"
	"github.com/vovakirdan/tiltgame/internal/script"
)

var flagScript string

var simulateCmd = &cobra.Command{
	Use:   "simulate --script <file> [delay_ms] [target_led] [game_time_sec]",
	Short: "Replay a tilt script against the game",
	Long: `Run a game at full speed with the accelerometer driven by a YAML tilt
script, one script millisecond per game tick, and print the outcome.

Script format:
  name: hold-north
  steps:
    - direction: N      # N, NE, E, SE, S, SW, W, NW or level
      ms: 600
    - x: 150            # or raw milli-g values
      y: -900
      ms: 200

The command fails if the script ends before the game does.

Examples:
  tiltgame simulate --script hold-north.yaml
  tiltgame simulate --script wobble.yaml 300 0 5`,
	Args: cobra.MaximumNArgs(3),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Path to tilt script YAML")
	//nolint:errcheck // Flag is defined just above
	simulateCmd.MarkFlagRequired("script")
}

// errScriptExhausted is returned when a script ends before the game.
var errScriptExhausted = errors.New("script ended before the game finished")

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	s, err := script.Load(flagScript)
	if err != nil {
		return err
	}
	samples, err := s.Resolve(cfg.Simulator.TiltMagnitude)
	if err != nil {
		return fmt.Errorf("script: %s: %w", flagScript, err)
	}

	var result *game.Result
	r := newRig(cfg, logger, game.WithResultHandler(func(res game.Result) {
		result = &res
	}))

	if err := simulate(r, script.NewPlayer(samples), startLine(args)); err != nil {
		return err
	}
	if result == nil {
		return errors.New("game did not start (zero game time?)")
	}

	printResult(cmd.OutOrStdout(), s.Name, *result)
	return nil
}

// simulate starts a game with line and feeds one script sample per tick
// until the game ends.
func simulate(r *rig, player *script.Player, line string) error {
	if err := r.commands.Dispatch(line, io.Discard); err != nil {
		return err
	}

	for r.ctrl.Running() {
		x, y, z, ok := player.Next()
		if !ok {
			return fmt.Errorf("%w (%d ticks left)", errScriptExhausted, r.ctrl.RemainingTicks())
		}
		r.sim.SetTilt(x, y, z)
		r.ctrl.OnTick()
	}
	return nil
}

func printResult(w io.Writer, name string, res game.Result) {
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "Script:   %s\n", name)
	fmt.Fprintf(w, "Game:     %s\n", res.GameID)
	fmt.Fprintf(w, "Target:   LED %d, hold %d ms, limit %d s\n",
		res.Params.TargetLED, res.Params.WinDurationMs, res.Params.GameDurationSec)
	fmt.Fprintf(w, "Outcome:  %s\n", res.Outcome)
	fmt.Fprintf(w, "Played:   %d ms\n", res.TicksPlayed*1000/game.TicksPerSecond)
}
