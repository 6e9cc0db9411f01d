package manager

import (
	"time"

	"snake-minigame/game/types"

	"github.com/pkg/errors"
)

// TickClock gates simulation steps on a fixed interval. The interval can be
// scaled at runtime; successive multipliers compound.
type TickClock struct {
	base    time.Duration
	current time.Duration
	elapsed time.Duration
}

func NewTickClock(base time.Duration) (*TickClock, error) {
	if base <= 0 {
		return nil, errors.Wrapf(types.ErrConfiguration, "tick interval %v", base)
	}
	return &TickClock{base: base, current: base}, nil
}

// Tick accumulates elapsed and reports whether a step is due. At most one
// step fires per call; time past the interval carries over.
func (c *TickClock) Tick(elapsed time.Duration) bool {
	if elapsed > 0 {
		c.elapsed += elapsed
	}
	if c.elapsed < c.current {
		return false
	}
	c.elapsed -= c.current
	return true
}

// SetMultiplier divides the current interval by m. A multiplier above 1
// speeds the game up.
func (c *TickClock) SetMultiplier(m float64) error {
	if m <= 0 {
		return errors.Wrapf(types.ErrConfiguration, "speed multiplier %v", m)
	}
	next := time.Duration(float64(c.current) / m)
	if next < 1 {
		next = 1
	}
	c.current = next
	return nil
}

func (c *TickClock) ResetToBase() {
	c.current = c.base
}

// Restart drops accumulated time without touching the interval.
func (c *TickClock) Restart() {
	c.elapsed = 0
}

func (c *TickClock) Interval() time.Duration {
	return c.current
}

func (c *TickClock) Base() time.Duration {
	return c.base
}

func (c *TickClock) Elapsed() time.Duration {
	return c.elapsed
}
