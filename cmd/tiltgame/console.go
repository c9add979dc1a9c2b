package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiltgame/internal/console"
	"github.com/vovakirdan/tiltgame/internal/game"
	"github.com/vovakirdan/tiltgame/internal/ticker"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the board console",
	Long: `Start a line console connected to a simulated board ticking at 1 kHz.

Console commands:
  dhttGame <delay_ms> <target_led> <game_time_sec>  Play a fun LED game
  tilt <direction>                                  Tilt the simulated board
  leds                                              Show which LEDs are lit
  help [command]                                    List commands or show usage
  quit                                              Leave the console

LED changes are logged at debug level; use --log-level debug to see them.

Example session:
  > dhttGame 300 2 10
  > tilt NE
  > leds`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	r := newRig(cfg, logger, game.WithResultHandler(func(res game.Result) {
		logger.Info("result",
			"game", res.GameID,
			"outcome", res.Outcome,
			"played_ms", res.TicksPlayed*1000/game.TicksPerSecond,
		)
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var guard ticker.Serializer
	driver := ticker.NewDriver(game.TicksPerSecond, &guard)

	driverErr := make(chan error, 1)
	go func() {
		driverErr <- driver.Run(ctx, r.ctrl.OnTick)
	}()

	prompt := ""
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = "> "
	}

	repl := &console.REPL{
		Registry: r.commands,
		In:       os.Stdin,
		Out:      os.Stdout,
		Prompt:   prompt,
		Guard:    &guard,
	}

	logger.Info("console ready", "tick_rate", game.TicksPerSecond)
	replErr := repl.Run(ctx)

	stop()
	if err := <-driverErr; err != nil {
		return err
	}
	return replErr
}
