package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tiltgame/internal/board"
	"github.com/vovakirdan/tiltgame/internal/console"
	"github.com/vovakirdan/tiltgame/internal/game"
	"github.com/vovakirdan/tiltgame/internal/ticker"
)

// Options wires the front end to a game.
type Options struct {
	Controller    *game.Controller
	Board         *board.Sim
	Commands      *console.Registry
	StartLine     string // Console line that starts a game, e.g. "dhttGame 500 0 30"
	FrameRate     int    // Redraws per second
	TiltMagnitude int32  // Tilt applied by the keys, milli-g
}

// Model is the Bubble Tea model for the simulated board.
type Model struct {
	ctrl      *game.Controller
	sim       *board.Sim
	commands  *console.Registry
	startLine string
	frameRate int
	magnitude int32

	acc       *ticker.Accumulator
	lastFrame time.Time
	tilt      board.Direction

	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel creates the model. The game is started from Init.
func NewModel(opts Options) (Model, error) {
	if opts.Controller == nil || opts.Board == nil || opts.Commands == nil {
		return Model{}, errors.New("tui: controller, board and commands are required")
	}
	if opts.FrameRate <= 0 {
		return Model{}, fmt.Errorf("tui: frame rate must be positive, got %d", opts.FrameRate)
	}

	// A frame must be able to carry every tick that came due since the last
	// one, with room for a late frame.
	maxCatchUp := max(ticker.DefaultMaxCatchUp, 2*game.TicksPerSecond/opts.FrameRate)
	acc, err := ticker.NewAccumulator(game.TicksPerSecond, maxCatchUp)
	if err != nil {
		return Model{}, err
	}

	return Model{
		ctrl:      opts.Controller,
		sim:       opts.Board,
		commands:  opts.Commands,
		startLine: opts.StartLine,
		frameRate: opts.FrameRate,
		magnitude: opts.TiltMagnitude,
		acc:       acc,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}, nil
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.startGame()
	return frameCmd(m.frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.startGame()
		return m, nil
	}

	if dir, ok := m.keys.tiltFor(msg); ok {
		m.tilt = dir
		m.sim.TiltTowards(dir, m.magnitude)
	}
	return m, nil
}

// handleFrame runs the game ticks that became due since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() {
		for range m.acc.Advance(now.Sub(m.lastFrame)) {
			m.ctrl.OnTick()
		}
	}
	m.lastFrame = now
	m.sim.StepAnimation()

	return m, frameCmd(m.frameRate)
}

// startGame dispatches the start command. The controller ignores it while
// a game is running.
func (m Model) startGame() {
	//nolint:errcheck // Start line is built by the caller from a registered command
	m.commands.Dispatch(m.startLine, io.Discard)
}

// View renders the board and game status.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	params := m.ctrl.Params()
	target := int(params.TargetLED)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("LED Tilt Game"))
	sb.WriteString("\n\n")
	sb.WriteString(renderBoard(m.sim.Frame(), target))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Target: %s   Tilt: %s\n", ledLabel(target), m.tilt)

	if m.ctrl.Running() {
		left := float64(m.ctrl.RemainingTicks()) / game.TicksPerSecond
		fmt.Fprintf(&sb, "Hold: %d / %d ms   Time left: %.1f s\n",
			m.ctrl.HeldMs(), params.WinDurationMs, left)
	} else if outcome, ok := m.sim.LastOutcome(); ok {
		sb.WriteString(renderOutcome(outcome))
		sb.WriteString(dimStyle.Render("   press r to play again"))
		sb.WriteString("\n")
	} else {
		sb.WriteString(dimStyle.Render("press r to start"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
