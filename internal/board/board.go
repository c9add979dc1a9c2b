// Package board describes the hardware a tilt game runs on: an accelerometer
// in the middle of a ring of eight LEDs laid out like a compass.
// Games talk to the board only through the interfaces below, so the same
// game logic drives real hardware, the simulated board, or a test fake.
package board

// LEDCount is the number of LEDs on the compass ring.
const LEDCount = 8

// Accelerometer reads the current acceleration in milli-g.
type Accelerometer interface {
	Acceleration() (x, y, z int32)
}

// LEDs controls the compass LEDs by index (0 to LEDCount-1).
// Indices outside that range are ignored.
type LEDs interface {
	On(led int)
	AllOff()
}

// Outcome identifies how a game ended.
type Outcome int

const (
	OutcomeTimeout Outcome = iota // Time limit expired before the target was held
	OutcomeWin                    // Target tilt was held long enough
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeTimeout:
		return "timeout"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

// OutcomeRenderer shows the end-of-game pattern for an outcome.
type OutcomeRenderer interface {
	RenderOutcome(o Outcome)
}

// Board is everything a game needs from the hardware.
type Board interface {
	Accelerometer
	LEDs
	OutcomeRenderer
}
