package pong

import "time"

// FrameClock measures elapsed time between frames.
//
// The first tick after construction or Restart returns 0, so a table that
// was idle for a while does not integrate one huge step on its first frame.
// Later ticks are capped at MaxFrameDelta, so a stalled session resumes
// with a short step instead of teleporting the ball.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick records now and returns the seconds elapsed since the previous tick.
// now should carry a monotonic reading (time.Now and tea.Tick both do).
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return min(dt, MaxFrameDelta)
}

// Restart makes the next tick report zero elapsed time.
func (c *FrameClock) Restart() {
	c.started = false
}
