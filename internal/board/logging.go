package board

import "github.com/charmbracelet/log"

// loggingBoard logs LED and outcome writes before passing them on.
type loggingBoard struct {
	Board
	logger *log.Logger
}

// WithLogging wraps b so LED writes are logged at debug level and
// outcomes at info level. Accelerometer reads are not logged.
func WithLogging(b Board, logger *log.Logger) Board {
	if logger == nil {
		return b
	}
	return &loggingBoard{Board: b, logger: logger}
}

func (b *loggingBoard) On(led int) {
	b.logger.Debug("led on", "led", led, "direction", DirectionForLED(led))
	b.Board.On(led)
}

func (b *loggingBoard) AllOff() {
	b.logger.Debug("leds off")
	b.Board.AllOff()
}

func (b *loggingBoard) RenderOutcome(o Outcome) {
	b.logger.Info("outcome", "result", o)
	b.Board.RenderOutcome(o)
}
