package board

// SimOptions controls the end-of-game animation of a simulated board.
type SimOptions struct {
	WinBlinks   int // Number of all-LED blinks after a win
	BlinkFrames int // Frames each blink or chase step lasts
}

// DefaultSimOptions returns the animation settings used when none are given.
func DefaultSimOptions() SimOptions {
	return SimOptions{
		WinBlinks:   3,
		BlinkFrames: 4,
	}
}

// Sim is an in-memory board. The tilt is set by the host (keyboard, script,
// or test) and LED writes are recorded instead of driving pins.
type Sim struct {
	opts     SimOptions
	leds     [LEDCount]bool
	x, y, z  int32
	polls    int
	outcomes []Outcome

	// End-of-game animation
	animOutcome Outcome
	animFrame   int
	animFrames  int
}

// NewSim creates a level board with all LEDs off.
func NewSim(opts SimOptions) *Sim {
	if opts.WinBlinks <= 0 {
		opts.WinBlinks = DefaultSimOptions().WinBlinks
	}
	if opts.BlinkFrames <= 0 {
		opts.BlinkFrames = DefaultSimOptions().BlinkFrames
	}
	return &Sim{opts: opts, z: 1000}
}

// Acceleration returns the current tilt and counts the poll.
func (s *Sim) Acceleration() (x, y, z int32) {
	s.polls++
	return s.x, s.y, s.z
}

// On lights a single LED.
func (s *Sim) On(led int) {
	if led < 0 || led >= LEDCount {
		return
	}
	s.leds[led] = true
}

// AllOff turns every LED off.
func (s *Sim) AllOff() {
	s.leds = [LEDCount]bool{}
}

// RenderOutcome records the outcome and starts its animation.
func (s *Sim) RenderOutcome(o Outcome) {
	s.outcomes = append(s.outcomes, o)
	s.animOutcome = o
	s.animFrame = 0
	switch o {
	case OutcomeWin:
		s.animFrames = s.opts.WinBlinks * 2 * s.opts.BlinkFrames
	default:
		s.animFrames = LEDCount * s.opts.BlinkFrames
	}
}

// SetTilt sets the acceleration sample returned by the next poll.
func (s *Sim) SetTilt(x, y, z int32) {
	s.x, s.y, s.z = x, y, z
}

// Tilt returns the current acceleration sample without counting a poll.
func (s *Sim) Tilt() (x, y, z int32) {
	return s.x, s.y, s.z
}

// TiltTowards tilts the board towards d with the given magnitude.
func (s *Sim) TiltTowards(d Direction, magnitude int32) {
	x, y := d.Vector(magnitude)
	s.SetTilt(x, y, 1000)
}

// LEDs returns the current LED outputs.
func (s *Sim) LEDs() [LEDCount]bool {
	return s.leds
}

// Lit returns the index of the first lit LED, or -1 if all are off.
func (s *Sim) Lit() int {
	for i, on := range s.leds {
		if on {
			return i
		}
	}
	return -1
}

// Polls returns how many times the accelerometer was read.
func (s *Sim) Polls() int {
	return s.polls
}

// Outcomes returns every outcome rendered so far, oldest first.
func (s *Sim) Outcomes() []Outcome {
	out := make([]Outcome, len(s.outcomes))
	copy(out, s.outcomes)
	return out
}

// LastOutcome returns the most recent outcome, if any.
func (s *Sim) LastOutcome() (Outcome, bool) {
	if len(s.outcomes) == 0 {
		return OutcomeTimeout, false
	}
	return s.outcomes[len(s.outcomes)-1], true
}

// Animating reports whether an outcome animation is still playing.
func (s *Sim) Animating() bool {
	return s.animFrame < s.animFrames
}

// StepAnimation advances the outcome animation by one frame.
func (s *Sim) StepAnimation() {
	if s.Animating() {
		s.animFrame++
	}
}

// Frame returns what the LEDs should show right now: the outcome animation
// while it plays, otherwise the LED outputs.
func (s *Sim) Frame() [LEDCount]bool {
	if !s.Animating() {
		return s.leds
	}

	var frame [LEDCount]bool
	step := s.animFrame / s.opts.BlinkFrames
	switch s.animOutcome {
	case OutcomeWin:
		if step%2 == 0 {
			for i := range frame {
				frame[i] = true
			}
		}
	default:
		frame[CompassOrder[step%LEDCount]] = true
	}
	return frame
}
