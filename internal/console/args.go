package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoArgument is returned when a fetch runs past the last argument.
var ErrNoArgument = errors.New("console: missing argument")

// Args is the argument cursor handed to a command handler.
// Each fetch consumes one word, whether or not it parses.
type Args struct {
	words []string
	pos   int
}

// NewArgs creates an argument cursor over words.
func NewArgs(words ...string) *Args {
	return &Args{words: words}
}

// Next returns the next raw word.
func (a *Args) Next() (string, error) {
	if a.pos >= len(a.words) {
		return "", ErrNoArgument
	}
	w := a.words[a.pos]
	a.pos++
	return w, nil
}

// FetchUint32 parses the next word as an unsigned 32-bit integer.
// Decimal and 0x-prefixed hex are accepted.
func (a *Args) FetchUint32() (uint32, error) {
	w, err := a.Next()
	if err != nil {
		return 0, err
	}

	base := 10
	digits := w
	if strings.HasPrefix(w, "0x") || strings.HasPrefix(w, "0X") {
		base = 16
		digits = w[2:]
	}

	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("console: bad argument %q: %w", w, err)
	}
	return uint32(v), nil
}

// Remaining returns how many words have not been fetched yet.
func (a *Args) Remaining() int {
	return len(a.words) - a.pos
}
