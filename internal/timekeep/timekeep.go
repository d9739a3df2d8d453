// Package timekeep provides tick-driven elapsed and countdown tracking.
//
// Nothing here schedules callbacks. Owners advance these values with
// explicit Advance(now) calls (in the TUI, from a 1-second tea.Tick), so
// pausing is just not advancing, and cancellation is dropping the value.
package timekeep

import "time"

// Stopwatch accumulates elapsed time across Advance calls while running.
type Stopwatch struct {
	elapsed time.Duration
	last    time.Time
	running bool
}

// Start begins (or restarts) accumulation from now.
func (s *Stopwatch) Start(now time.Time) {
	s.running = true
	s.last = now
}

// Advance adds the time since the previous Advance/Start to the total.
// No-op while paused.
func (s *Stopwatch) Advance(now time.Time) {
	if !s.running || s.last.IsZero() {
		return
	}
	if d := now.Sub(s.last); d > 0 {
		s.elapsed += d
	}
	s.last = now
}

// Pause folds in time up to now and stops accumulation.
func (s *Stopwatch) Pause(now time.Time) {
	s.Advance(now)
	s.running = false
}

// Resume restarts accumulation from now. Time spent paused is not counted.
func (s *Stopwatch) Resume(now time.Time) {
	s.running = true
	s.last = now
}

// Elapsed returns the accumulated running time.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Running reports whether the stopwatch is accumulating.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Reset zeroes the stopwatch and stops it.
func (s *Stopwatch) Reset() {
	*s = Stopwatch{}
}

// Countdown counts a fixed budget down to zero across Advance calls.
// A zero-budget countdown never expires; it is the "no time limit" case.
type Countdown struct {
	budget    time.Duration
	remaining time.Duration
	last      time.Time
	running   bool
}

// NewCountdown creates a countdown with the given budget, not yet running.
func NewCountdown(budget time.Duration) *Countdown {
	return &Countdown{budget: budget, remaining: budget}
}

// Start begins counting down from the full budget.
func (c *Countdown) Start(now time.Time) {
	c.remaining = c.budget
	c.running = true
	c.last = now
}

// Advance subtracts the time since the previous Advance/Start, clamping
// at zero. No-op while paused or when there is no budget.
func (c *Countdown) Advance(now time.Time) {
	if !c.running || c.budget == 0 || c.last.IsZero() {
		return
	}
	if d := now.Sub(c.last); d > 0 {
		c.remaining -= d
		if c.remaining < 0 {
			c.remaining = 0
		}
	}
	c.last = now
}

// Pause folds in time up to now and stops the countdown.
func (c *Countdown) Pause(now time.Time) {
	c.Advance(now)
	c.running = false
}

// Resume restarts the countdown from now with whatever remained.
func (c *Countdown) Resume(now time.Time) {
	c.running = true
	c.last = now
}

// Remaining returns the time left. Zero-budget countdowns report zero.
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// Expired reports whether a limited countdown has reached zero.
func (c *Countdown) Expired() bool {
	return c.budget > 0 && c.remaining <= 0
}

// Limited reports whether this countdown has a budget at all.
func (c *Countdown) Limited() bool {
	return c.budget > 0
}
