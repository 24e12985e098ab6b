package life

import "time"

// DefaultRate is the generation rate a run starts with and returns to on
// ResetRate, in generations per second.
const DefaultRate = 10

// MinRate is the lowest rate the clock accepts.
const MinRate = 1

// Clock gates generation advances. While running it allows one advance once
// 1/rate seconds have passed since the previous one; while paused it allows
// exactly one advance per step request.
//
// The gate never catches up: however late a check is, it permits at most a
// single advance.
type Clock struct {
	paused        bool
	rate          int
	stepRequested bool
	last          time.Time
}

// NewClock returns a running clock at DefaultRate whose elapsed-time baseline
// starts at now.
func NewClock(now time.Time) *Clock {
	return &Clock{rate: DefaultRate, last: now}
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Rate returns the current rate in generations per second.
func (c *Clock) Rate() int { return c.rate }

// StepRequested reports whether a single step is pending.
func (c *Clock) StepRequested() bool { return c.stepRequested }

// Interval returns the time between generations at the current rate.
func (c *Clock) Interval() time.Duration {
	return time.Second / time.Duration(c.rate)
}

// TogglePause switches between running and paused. Any pending step request
// is dropped.
func (c *Clock) TogglePause() {
	c.paused = !c.paused
	c.stepRequested = false
}

// RequestStep asks for one generation while paused. Ignored while running.
func (c *Clock) RequestStep() {
	if c.paused {
		c.stepRequested = true
	}
}

// Faster raises the rate by one. There is no upper bound.
func (c *Clock) Faster() {
	c.rate++
}

// Slower lowers the rate by one, never below MinRate.
func (c *Clock) Slower() {
	if c.rate > MinRate {
		c.rate--
	}
}

// ResetRate restores DefaultRate.
func (c *Clock) ResetRate() {
	c.rate = DefaultRate
}

// SetRate sets the rate, clamping values below MinRate.
func (c *Clock) SetRate(rate int) {
	c.rate = max(rate, MinRate)
}

// Due reports whether a generation should advance at now. A pending step
// request is consumed by this call.
func (c *Clock) Due(now time.Time) bool {
	if c.paused {
		if !c.stepRequested {
			return false
		}
		c.stepRequested = false
		return true
	}
	return now.Sub(c.last) >= c.Interval()
}

// MarkAdvanced resets the elapsed-time baseline after a generation advance.
func (c *Clock) MarkAdvanced(now time.Time) {
	c.last = now
}
