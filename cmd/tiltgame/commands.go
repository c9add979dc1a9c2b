package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the console command table",
	Long:  `Shows every command available in 'tiltgame console'.`,
	Args:  cobra.NoArgs,
	RunE:  runCommands,
}

func runCommands(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(io.Discard, cfg.Log.Level)
	if err != nil {
		return err
	}

	r := newRig(cfg, logger)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Console commands:")
	fmt.Fprintln(out)
	if err := r.commands.Help("", out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tiltgame console' to use them.")
	return nil
}
