// Package host holds what every window backend shares.
package host

import (
	"time"

	"go.uber.org/zap"

	"backdrop/internal/app"
)

// Config is the requested window. Backends may end up with a different size
// and report it to the session.
type Config struct {
	Width, Height int
	Title         string
}

// RunFunc opens a backend, builds the session from opts once the surface
// size is known and blocks until the user closes it.
type RunFunc func(cfg Config, opts app.Options, log *zap.Logger) error

// MaxFrameStep caps dt so a stall does not turn into one huge animation jump.
const MaxFrameStep = 0.1

// Clock measures frame steps in seconds.
type Clock struct {
	last time.Time
	now  func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now, last: time.Now()}
}

// Step returns the seconds since the previous Step, capped at MaxFrameStep.
func (c *Clock) Step() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt > MaxFrameStep {
		dt = MaxFrameStep
	}
	if dt < 0 {
		dt = 0
	}
	return dt
}
