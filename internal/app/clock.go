package app

import "chosenoffset.com/windowdemos/internal/render"

// frameClock measures seconds between ticks using the platform's monotonic
// performance counter.
type frameClock struct {
	platform render.Platform
	freq     float64
	last     uint64
}

func newFrameClock(p render.Platform) *frameClock {
	return &frameClock{
		platform: p,
		freq:     float64(p.PerformanceFrequency()),
		last:     p.PerformanceCounter(),
	}
}

// Tick returns the seconds elapsed since the previous Tick (or since the
// clock was created).
func (c *frameClock) Tick() float64 {
	now := c.platform.PerformanceCounter()
	elapsed := now - c.last
	c.last = now

	if c.freq <= 0 {
		return 0
	}
	return float64(elapsed) / c.freq
}
