// Package tui provides the Bubble Tea front end for the tilt game.
// It draws the simulated board, maps keys to tilt, and turns redraw frames
// into millisecond game ticks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a redraw and run the game ticks that became due.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends one FrameMsg after 1/frameRate seconds.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
