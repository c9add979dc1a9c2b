// Package ticker drives tick handlers at a fixed rate on a host machine.
// It stands in for the periodic timer interrupt of a microcontroller.
package ticker

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultMaxCatchUp bounds how many ticks are delivered for one wake-up
// after the host stalls (e.g. a suspended laptop).
const DefaultMaxCatchUp = 250

// Serializer runs functions one at a time. Tick handlers and command
// handlers that share state both go through the same Serializer.
type Serializer struct {
	sync.Mutex
}

// Do runs fn while holding the lock.
func (s *Serializer) Do(fn func()) {
	s.Lock()
	defer s.Unlock()
	fn()
}

// Accumulator converts elapsed wall time into whole ticks, carrying the
// remainder over to the next call.
type Accumulator struct {
	interval   time.Duration
	maxCatchUp int
	carry      time.Duration
}

// NewAccumulator creates an accumulator for rate ticks per second.
// maxCatchUp <= 0 means no limit.
func NewAccumulator(rate, maxCatchUp int) (*Accumulator, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("ticker: rate must be positive, got %d", rate)
	}
	return &Accumulator{
		interval:   time.Second / time.Duration(rate),
		maxCatchUp: maxCatchUp,
	}, nil
}

// Advance adds elapsed time and returns how many ticks are now due.
// When more than maxCatchUp ticks are due the excess is dropped.
func (a *Accumulator) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}
	a.carry += elapsed
	n := int(a.carry / a.interval)
	a.carry -= time.Duration(n) * a.interval

	if a.maxCatchUp > 0 && n > a.maxCatchUp {
		n = a.maxCatchUp
	}
	return n
}

// Interval returns the duration of one tick.
func (a *Accumulator) Interval() time.Duration {
	return a.interval
}

// Driver calls a tick handler at a fixed rate until its context ends.
type Driver struct {
	Rate       int         // Ticks per second
	MaxCatchUp int         // See DefaultMaxCatchUp
	Guard      *Serializer // Runs each batch of ticks, if set
	now        func() time.Time
}

// NewDriver creates a driver for rate ticks per second.
func NewDriver(rate int, guard *Serializer) *Driver {
	return &Driver{
		Rate:       rate,
		MaxCatchUp: DefaultMaxCatchUp,
		Guard:      guard,
		now:        time.Now,
	}
}

// Run calls tick Rate times per second until ctx is cancelled.
// Wake-ups that arrive late deliver all the ticks that became due.
func (d *Driver) Run(ctx context.Context, tick func()) error {
	acc, err := NewAccumulator(d.Rate, d.MaxCatchUp)
	if err != nil {
		return err
	}
	now := d.now
	if now == nil {
		now = time.Now
	}

	t := time.NewTicker(acc.Interval())
	defer t.Stop()

	last := now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			current := now()
			n := acc.Advance(current.Sub(last))
			last = current
			d.deliver(n, tick)
		}
	}
}

func (d *Driver) deliver(n int, tick func()) {
	if n == 0 {
		return
	}
	batch := func() {
		for range n {
			tick()
		}
	}
	if d.Guard != nil {
		d.Guard.Do(batch)
		return
	}
	batch()
}
