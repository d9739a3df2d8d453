// Package practice composes a timed practice session with hint and
// solution tracking and a coarse cognitive-load signal derived from
// errors, hesitation, and idle time.
package practice

import "time"

// LoadLevel is the coarse cognitive-load band shown to the learner.
type LoadLevel int

const (
	LoadLow LoadLevel = iota
	LoadMedium
	LoadHigh
	LoadOverload
)

func (l LoadLevel) String() string {
	switch l {
	case LoadLow:
		return "low"
	case LoadMedium:
		return "medium"
	case LoadHigh:
		return "high"
	case LoadOverload:
		return "overload"
	}
	return "unknown"
}

// LoadWeights converts the three raw counters into a single score.
// This is a tuning table, not a validated model; the one property the
// monitor guarantees is that raising any input never lowers the level.
type LoadWeights struct {
	PerError          float64
	PerHesitationSec  float64
	PerIdleSec        float64
	MediumAt          float64
	HighAt            float64
	OverloadAt        float64
	IdleGrace         time.Duration
}

// DefaultLoadWeights is the shipped tuning.
func DefaultLoadWeights() LoadWeights {
	return LoadWeights{
		PerError:         3.0,
		PerHesitationSec: 0.5,
		PerIdleSec:       0.2,
		MediumAt:         6,
		HighAt:           14,
		OverloadAt:       24,
		IdleGrace:        8 * time.Second,
	}
}

// Monitor accumulates the three load inputs. Idle time is wall-clock time
// between ticks with no interaction inside the grace window.
type Monitor struct {
	weights LoadWeights

	errors     int
	hesitation time.Duration
	idle       time.Duration

	lastTick        time.Time
	lastInteraction time.Time
}

// NewMonitor creates a monitor with the given weights.
func NewMonitor(w LoadWeights) *Monitor {
	return &Monitor{weights: w}
}

// RecordError counts one wrong answer.
func (m *Monitor) RecordError() {
	m.errors++
}

// RecordHesitation adds hesitation time, typically charged when the
// learner reveals a hint or a solution.
func (m *Monitor) RecordHesitation(d time.Duration) {
	if d > 0 {
		m.hesitation += d
	}
}

// RecordInteraction marks learner activity, resetting the idle window.
func (m *Monitor) RecordInteraction(now time.Time) {
	m.lastInteraction = now
}

// Tick advances the idle clock. Time between ticks counts as idle once
// the gap since the last interaction exceeds the grace period.
func (m *Monitor) Tick(now time.Time) {
	if m.lastInteraction.IsZero() {
		m.lastInteraction = now
	}
	if !m.lastTick.IsZero() {
		dt := now.Sub(m.lastTick)
		if dt > 0 && now.Sub(m.lastInteraction) > m.weights.IdleGrace {
			m.idle += dt
		}
	}
	m.lastTick = now
}

// Errors returns the error count.
func (m *Monitor) Errors() int { return m.errors }

// Hesitation returns accumulated hesitation time.
func (m *Monitor) Hesitation() time.Duration { return m.hesitation }

// Idle returns accumulated idle time.
func (m *Monitor) Idle() time.Duration { return m.idle }

// Level maps the weighted inputs to a load band. Each weight and cutoff
// is non-negative, so the mapping is monotone in every input.
func (m *Monitor) Level() LoadLevel {
	w := m.weights
	score := float64(m.errors)*w.PerError +
		m.hesitation.Seconds()*w.PerHesitationSec +
		m.idle.Seconds()*w.PerIdleSec

	switch {
	case score >= w.OverloadAt:
		return LoadOverload
	case score >= w.HighAt:
		return LoadHigh
	case score >= w.MediumAt:
		return LoadMedium
	default:
		return LoadLow
	}
}

// Reset zeroes all three counters and the idle clock.
func (m *Monitor) Reset() {
	w := m.weights
	*m = Monitor{weights: w}
}
