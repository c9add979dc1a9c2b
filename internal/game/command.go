package game

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tiltgame/internal/console"
)

// Console command metadata.
const (
	CommandName  = "dhttGame"
	CommandUsage = "<delay_ms> <target_led> <game_time_sec>"
	CommandShort = "Play a fun LED game"
)

// Command returns the console command that starts a game on c.
func (c *Controller) Command() console.Command {
	return console.Command{
		Name:    CommandName,
		Usage:   CommandUsage,
		Short:   CommandShort,
		Handler: c.handleCommand,
	}
}

func (c *Controller) handleCommand(action console.Action, args *console.Args, out io.Writer) {
	switch action {
	case console.ActionShortHelp:
		return
	case console.ActionLongHelp:
		fmt.Fprintf(out, "%s %s  %s\n", CommandName, CommandUsage, CommandShort)
		return
	}

	if c.Running() {
		c.logger.Debug("dhttGame ignored, game in progress", "game", c.id)
		return
	}
	p := ParseParams(args)
	if extra := args.Remaining(); extra > 0 {
		c.logger.Debug("dhttGame extra arguments ignored", "count", extra)
	}
	c.Start(p)
}

// ParseParams fetches win delay, target LED, and game time in that order.
// Each argument that is missing or does not parse takes its default.
func ParseParams(args *console.Args) Params {
	p := DefaultParams()

	if v, err := args.FetchUint32(); err == nil {
		p.WinDurationMs = v
	}
	if v, err := args.FetchUint32(); err == nil {
		p.TargetLED = v
	}
	if v, err := args.FetchUint32(); err == nil {
		p.GameDurationSec = v
	}
	return p
}
