package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiltgame/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [delay_ms] [target_led] [game_time_sec]",
	Short: "Play the game in the terminal",
	Long: `Start a game on the simulated board. The keyboard acts as the
accelerometer: the board stays tilted in the last direction pressed.

Arguments (all optional, same as the dhttGame console command):
  delay_ms       - How long the target LED must stay lit (default 500)
  target_led     - LED to hold, 0-7 (default 0, north)
  game_time_sec  - Time limit in seconds (default 30)

LEDs (BSP index):
  1 NW   0 N   2 NE
  3 W          4 E
  5 SW   7 S   6 SE

Controls:
  Arrows/WASD  - Tilt N/S/W/E
  7 9 1 3      - Tilt NW/NE/SW/SE
  Space        - Level the board
  R/Enter      - New game (after the current one ends)
  Q/Ctrl+C     - Quit

Examples:
  tiltgame play
  tiltgame play 1000 4 20`,
	Args: cobra.MaximumNArgs(3),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal; try 'tiltgame console' or 'tiltgame simulate'")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs would draw over the alternate screen
	logger, err := newLogger(io.Discard, cfg.Log.Level)
	if err != nil {
		return err
	}

	r := newRig(cfg, logger)

	return tui.Run(tui.Options{
		Controller:    r.ctrl,
		Board:         r.sim,
		Commands:      r.commands,
		StartLine:     startLine(args),
		FrameRate:     cfg.Simulator.FrameRate,
		TiltMagnitude: cfg.Simulator.TiltMagnitude,
	})
}
