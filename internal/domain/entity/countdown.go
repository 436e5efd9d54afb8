package entity

// CountdownFloor bounds how far below zero a countdown may drift while idle
const CountdownFloor = 1e-6

// Countdown is a timed-ability tracker: coyote time, jump buffering,
// invincibility windows, shot cadence and lifetimes all use it.
// It is a plain value; the zero value is an inactive countdown of zero length.
type Countdown struct {
	Remaining float64 // seconds
	Duration  float64 // seconds
}

// NewCountdown creates an inactive countdown with the given duration
func NewCountdown(duration float64) Countdown {
	return Countdown{Duration: duration}
}

// Tick advances the countdown by dt seconds. A delta rejected by
// CheckDelta leaves the countdown untouched.
func (c *Countdown) Tick(dt float64) {
	if CheckDelta(dt) != nil {
		return
	}
	c.Remaining -= dt
	if c.Remaining < -CountdownFloor {
		c.Remaining = -CountdownFloor
	}
}

// Reset restarts the countdown at its full duration
func (c *Countdown) Reset() {
	c.Remaining = c.Duration
}

// Clear ends the countdown immediately
func (c *Countdown) Clear() {
	c.Remaining = 0
}

// Active returns true while time remains
func (c Countdown) Active() bool {
	return c.Remaining > 0
}
