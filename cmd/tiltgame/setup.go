package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiltgame/internal/board"
	"github.com/vovakirdan/tiltgame/internal/config"
	"github.com/vovakirdan/tiltgame/internal/console"
	"github.com/vovakirdan/tiltgame/internal/game"
)

// rig is a simulated board with a controller and its command table.
type rig struct {
	sim      *board.Sim
	ctrl     *game.Controller
	commands *console.Registry
}

// newRig builds the simulated board, the controller and the command table.
// LED writes go through the logger so the console can show them.
func newRig(cfg config.Config, logger *log.Logger, opts ...game.Option) *rig {
	sim := board.NewSim(board.SimOptions{
		WinBlinks:   cfg.Outcome.WinBlinks,
		BlinkFrames: cfg.Outcome.BlinkFrames,
	})

	opts = append([]game.Option{
		game.WithLogger(logger),
		game.WithTiltThreshold(cfg.Board.TiltThreshold),
	}, opts...)
	ctrl := game.NewController(board.WithLogging(sim, logger), opts...)

	r := &rig{sim: sim, ctrl: ctrl, commands: console.NewRegistry()}
	r.commands.Register(ctrl.Command())
	r.commands.Register(tiltCommand(sim, cfg.Simulator.TiltMagnitude))
	r.commands.Register(ledsCommand(sim))
	return r
}

// startLine builds the dhttGame console line for positional CLI arguments.
func startLine(args []string) string {
	return strings.TrimSpace(game.CommandName + " " + strings.Join(args, " "))
}

// tiltCommand sets the simulated accelerometer from the console.
func tiltCommand(sim *board.Sim, magnitude int32) console.Command {
	return console.Command{
		Name:  "tilt",
		Usage: "<N|NE|E|SE|S|SW|W|NW|level>",
		Short: "Tilt the simulated board",
		Handler: func(action console.Action, args *console.Args, out io.Writer) {
			switch action {
			case console.ActionShortHelp:
				return
			case console.ActionLongHelp:
				fmt.Fprintln(out, "tilt <N|NE|E|SE|S|SW|W|NW|level>  Tilt the simulated board")
				return
			}

			word, err := args.Next()
			if err != nil {
				x, y, _ := sim.Tilt()
				fmt.Fprintf(out, "tilt: %v\n", board.TiltDirection(x, y, board.DefaultTiltThreshold))
				return
			}
			dir, err := board.ParseDirection(word)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				return
			}
			sim.TiltTowards(dir, magnitude)
		},
	}
}

// ledsCommand prints the LED outputs as seen on the board.
func ledsCommand(sim *board.Sim) console.Command {
	return console.Command{
		Name:  "leds",
		Short: "Show which LEDs are lit",
		Handler: func(action console.Action, args *console.Args, out io.Writer) {
			switch action {
			case console.ActionShortHelp:
				return
			case console.ActionLongHelp:
				fmt.Fprintln(out, "leds  Show which LEDs are lit, clockwise from north")
				return
			}

			leds := sim.LEDs()
			parts := make([]string, 0, board.LEDCount)
			for _, led := range board.CompassOrder {
				mark := "."
				if leds[led] {
					mark = "*"
				}
				parts = append(parts, fmt.Sprintf("%s:%s", board.DirectionForLED(led), mark))
			}
			fmt.Fprintln(out, strings.Join(parts, " "))
		},
	}
}
