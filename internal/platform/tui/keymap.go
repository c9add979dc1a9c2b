package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tiltgame/internal/board"
)

// keyMap holds the board's key bindings. It implements help.KeyMap.
type keyMap struct {
	North     key.Binding
	South     key.Binding
	West      key.Binding
	East      key.Binding
	NorthWest key.Binding
	NorthEast key.Binding
	SouthWest key.Binding
	SouthEast key.Binding
	Level     key.Binding
	Start     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		North:     key.NewBinding(key.WithKeys("up", "w", "8"), key.WithHelp("↑/w", "tilt N")),
		South:     key.NewBinding(key.WithKeys("down", "s", "2"), key.WithHelp("↓/s", "tilt S")),
		West:      key.NewBinding(key.WithKeys("left", "a", "4"), key.WithHelp("←/a", "tilt W")),
		East:      key.NewBinding(key.WithKeys("right", "d", "6"), key.WithHelp("→/d", "tilt E")),
		NorthWest: key.NewBinding(key.WithKeys("7", "home"), key.WithHelp("7", "tilt NW")),
		NorthEast: key.NewBinding(key.WithKeys("9", "pgup"), key.WithHelp("9", "tilt NE")),
		SouthWest: key.NewBinding(key.WithKeys("1", "end"), key.WithHelp("1", "tilt SW")),
		SouthEast: key.NewBinding(key.WithKeys("3", "pgdown"), key.WithHelp("3", "tilt SE")),
		Level:     key.NewBinding(key.WithKeys(" ", "5"), key.WithHelp("space", "level")),
		Start:     key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("r", "new game")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns bindings for the one-line help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.South, k.West, k.East, k.Level, k.Start, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.West, k.East},
		{k.NorthWest, k.NorthEast, k.SouthWest, k.SouthEast},
		{k.Level, k.Start, k.Quit},
	}
}

// tiltFor returns the direction bound to a key, if any.
func (k keyMap) tiltFor(msg tea.KeyMsg) (board.Direction, bool) {
	pairs := []struct {
		binding key.Binding
		dir     board.Direction
	}{
		{k.North, board.DirN},
		{k.South, board.DirS},
		{k.West, board.DirW},
		{k.East, board.DirE},
		{k.NorthWest, board.DirNW},
		{k.NorthEast, board.DirNE},
		{k.SouthWest, board.DirSW},
		{k.SouthEast, board.DirSE},
		{k.Level, board.DirNone},
	}
	for _, p := range pairs {
		if key.Matches(msg, p.binding) {
			return p.dir, true
		}
	}
	return board.DirNone, false
}
