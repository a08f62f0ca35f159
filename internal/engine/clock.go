package engine

import "time"

// DefaultPeriod is the evolution heartbeat.
const DefaultPeriod = 250 * time.Millisecond

// Clock is the pausable periodic ticker gating automatic evolution. It
// starts paused so the user always gets a look at the seed generation.
type Clock struct {
	period  time.Duration
	elapsed time.Duration
	running bool
}

// NewClock creates a paused clock. A non-positive period falls back to
// DefaultPeriod.
func NewClock(period time.Duration) *Clock {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Clock{period: period}
}

// Toggle flips the clock between paused and running.
func (c *Clock) Toggle() { c.running = !c.running }

// Running reports whether the clock is advancing.
func (c *Clock) Running() bool { return c.running }

// Tick advances the clock by elapsed and invokes onDue at most once if a
// full period has passed since the last firing. A frame hitch spanning many
// periods still produces a single firing: the surplus is discarded rather
// than replayed as catch-up steps. Paused clocks neither advance nor fire.
func (c *Clock) Tick(elapsed time.Duration, onDue func()) {
	if !c.running {
		return
	}
	c.elapsed += elapsed
	if c.elapsed >= c.period {
		c.elapsed = 0
		onDue()
	}
}
