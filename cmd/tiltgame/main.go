// tiltgame is an LED/accelerometer reaction game for a compass-style LED board.
// Tilt the board so the target LED lights up and hold it there before time
// runs out. Without hardware the board is simulated.
//
// Usage:
//
//	tiltgame play [delay_ms] [target_led] [game_time_sec]      - Play in the terminal
//	tiltgame console                                           - Board console (dhttGame, tilt, leds)
//	tiltgame simulate --script <file> [delay] [target] [time]  - Replay a tilt script
//	tiltgame commands                                          - List console commands
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.tiltgame, ./configs)
//	--log-level <level> - Override log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltgame/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltgame",
	Short: "LED tilt game - hold the target LED lit to win",
	Long: `tiltgame runs the LED accelerometer game on a simulated compass board.

Tilt the board so the target LED lights up and keep it lit for the win
delay before the game time runs out.

Available commands:
  play      - Play in the terminal with the keyboard as the accelerometer
  console   - Line console with the dhttGame command, ticking in real time
  simulate  - Replay a YAML tilt script at full speed
  commands  - List the console command table

Examples:
  tiltgame play
  tiltgame play 500 2 30
  tiltgame console
  tiltgame simulate --script ./scripts/hold-north.yaml 300 0 5`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(commandsCmd)
}

// loadConfig loads the config and applies the --log-level override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiltgame",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}
