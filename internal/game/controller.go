// Package game implements the LED tilt reaction game.
//
// The player tilts the board so the LED marked as the target lights up and
// must keep it lit for the win duration before the game time runs out. The
// Controller is a tick-driven state machine: Start arms it, OnTick advances
// it once per millisecond, and the last tick renders the outcome and returns
// it to idle. The Controller takes no locks; callers must not invoke it
// concurrently.
package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/rs/xid"

	"github.com/vovakirdan/tiltgame/internal/board"
)

// Timing constants. One tick is one millisecond of game time.
const (
	TicksPerSecond    = 1000 // Tick rate the driver must call OnTick at
	PollIntervalTicks = 100  // Accelerometer is read when remaining ticks is a multiple of this
	msPerTick         = 1000 / TicksPerSecond
)

// endTick is the sentinel value of remainingTicks on the final tick.
const endTick = 1

// noLED marks that no LED is lit.
const noLED = -1

// Params configures a single game.
type Params struct {
	WinDurationMs   uint32 // How long the target must be held
	TargetLED       uint32 // LED (tilt direction) to hold
	GameDurationSec uint32 // Time limit
}

// DefaultParams returns the parameters used for arguments that are absent.
func DefaultParams() Params {
	return Params{
		WinDurationMs:   500,
		TargetLED:       0,
		GameDurationSec: 30,
	}
}

// Ticks returns the game length in ticks.
func (p Params) Ticks() uint64 {
	return uint64(p.GameDurationSec) * TicksPerSecond
}

// Result describes a finished game.
type Result struct {
	GameID      string
	Outcome     board.Outcome
	Params      Params
	TicksPlayed uint64
}

// Controller owns the state of the single game that may be running.
type Controller struct {
	board     board.Board
	threshold int32
	logger    *log.Logger
	onResult  func(Result)

	remainingTicks uint64 // 0 idle, endTick on the last tick
	params         Params
	litLED         int
	heldTicks      uint64
	ticksPlayed    uint64
	id             string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Without it the controller logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTiltThreshold sets the tilt (milli-g) below which the board is level.
func WithTiltThreshold(mg int32) Option {
	return func(c *Controller) {
		c.threshold = mg
	}
}

// WithResultHandler registers fn to be called after each outcome is rendered.
func WithResultHandler(fn func(Result)) Option {
	return func(c *Controller) {
		c.onResult = fn
	}
}

// NewController creates an idle controller for the given board.
func NewController(b board.Board, opts ...Option) *Controller {
	c := &Controller{
		board:     b,
		threshold: board.DefaultTiltThreshold,
		logger:    log.New(io.Discard),
		litLED:    noLED,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start arms a new game. It is ignored, returning false, while a game is
// already running. A zero game duration clears the LEDs but arms nothing.
func (c *Controller) Start(p Params) bool {
	if c.remainingTicks != 0 {
		c.logger.Debug("start ignored, game in progress", "game", c.id, "remaining", c.remainingTicks)
		return false
	}

	c.setup(p)
	c.remainingTicks = p.Ticks()

	if c.remainingTicks == 0 {
		c.logger.Debug("zero game duration, nothing armed")
		return false
	}

	c.logger.Info("game started",
		"game", c.id,
		"target", p.TargetLED,
		"direction", board.DirectionForLED(int(p.TargetLED)),
		"win_ms", p.WinDurationMs,
		"duration_s", p.GameDurationSec,
	)
	return true
}

// setup stores the parameters, clears the LEDs, and zeroes the hold timer.
func (c *Controller) setup(p Params) {
	c.board.AllOff()
	c.params = p
	c.litLED = noLED
	c.heldTicks = 0
	c.ticksPlayed = 0
	c.id = xid.New().String()
}

// OnTick advances the running game by one tick. It does nothing while idle.
func (c *Controller) OnTick() {
	if c.remainingTicks == 0 {
		return
	}
	c.ticksPlayed++

	if c.remainingTicks%PollIntervalTicks == 0 {
		c.determineLight()
	}

	won := c.winStopwatch()
	if won {
		c.remainingTicks = endTick
	} else {
		c.remainingTicks--
	}

	if c.remainingTicks == endTick {
		c.determineOutcome(won)
		c.remainingTicks = 0
	}
}

// determineLight polls the accelerometer and lights only the LED matching
// the dominant tilt.
func (c *Controller) determineLight() {
	x, y, _ := c.board.Acceleration()
	dir := board.TiltDirection(x, y, c.threshold)

	led, ok := dir.LED()
	if !ok {
		led = noLED
	}
	if led == c.litLED {
		return
	}

	c.board.AllOff()
	if led != noLED {
		c.board.On(led)
	}
	c.litLED = led
}

// winStopwatch accumulates time while the target LED is lit and reports a
// win once it reaches the win duration. Any other tick resets the hold.
func (c *Controller) winStopwatch() bool {
	if c.litLED == noLED || uint32(c.litLED) != c.params.TargetLED {
		c.heldTicks = 0
		return false
	}
	c.heldTicks++
	return c.heldTicks*msPerTick >= uint64(c.params.WinDurationMs)
}

// determineOutcome renders the end-of-game pattern and reports the result.
func (c *Controller) determineOutcome(won bool) {
	outcome := board.OutcomeTimeout
	if won {
		outcome = board.OutcomeWin
	}

	c.board.AllOff()
	c.litLED = noLED
	c.board.RenderOutcome(outcome)

	result := Result{
		GameID:      c.id,
		Outcome:     outcome,
		Params:      c.params,
		TicksPlayed: c.ticksPlayed,
	}
	c.logger.Info("game over", "game", c.id, "outcome", outcome, "ticks", c.ticksPlayed)

	if c.onResult != nil {
		c.onResult(result)
	}
}

// Running reports whether a game is in progress.
func (c *Controller) Running() bool {
	return c.remainingTicks != 0
}

// RemainingTicks returns the countdown value; 0 when idle.
func (c *Controller) RemainingTicks() uint64 {
	return c.remainingTicks
}

// Params returns the parameters of the current or most recent game.
func (c *Controller) Params() Params {
	return c.params
}

// HeldMs returns how long the target has been held continuously.
func (c *Controller) HeldMs() uint64 {
	return c.heldTicks * msPerTick
}

// LitLED returns the LED lit by the last poll, or -1.
func (c *Controller) LitLED() int {
	return c.litLED
}

// GameID returns the ID of the current or most recent game.
func (c *Controller) GameID() string {
	return c.id
}
