package practice

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

func TestMonitor_LevelBands(t *testing.T) {
	m := NewMonitor(DefaultLoadWeights())
	if m.Level() != LoadLow {
		t.Errorf("fresh monitor level = %v, want low", m.Level())
	}

	// Two errors: score 6 crosses the medium cutoff.
	m.RecordError()
	m.RecordError()
	if m.Level() != LoadMedium {
		t.Errorf("level after 2 errors = %v, want medium", m.Level())
	}

	// Pile on hesitation to reach high, then overload.
	m.RecordHesitation(20 * time.Second)
	if m.Level() != LoadHigh {
		t.Errorf("level = %v, want high", m.Level())
	}
	m.RecordHesitation(20 * time.Second)
	if m.Level() != LoadOverload {
		t.Errorf("level = %v, want overload", m.Level())
	}
}

func TestMonitor_Monotonicity(t *testing.T) {
	// Increasing any single input must never decrease the level.
	base := NewMonitor(DefaultLoadWeights())
	prev := base.Level()
	for i := 0; i < 20; i++ {
		base.RecordError()
		if cur := base.Level(); cur < prev {
			t.Fatalf("error %d lowered level from %v to %v", i, prev, cur)
		} else {
			prev = cur
		}
	}

	hes := NewMonitor(DefaultLoadWeights())
	prev = hes.Level()
	for i := 0; i < 30; i++ {
		hes.RecordHesitation(3 * time.Second)
		if cur := hes.Level(); cur < prev {
			t.Fatalf("hesitation step %d lowered level from %v to %v", i, prev, cur)
		} else {
			prev = cur
		}
	}
}

func TestMonitor_IdleAccumulatesAfterGrace(t *testing.T) {
	m := NewMonitor(DefaultLoadWeights())
	m.RecordInteraction(t0)
	m.Tick(t0)

	// Within the 8s grace window nothing accrues.
	m.Tick(t0.Add(5 * time.Second))
	if m.Idle() != 0 {
		t.Errorf("idle inside grace = %v, want 0", m.Idle())
	}

	// Past the grace window the tick deltas count.
	m.Tick(t0.Add(10 * time.Second))
	m.Tick(t0.Add(15 * time.Second))
	if m.Idle() != 10*time.Second {
		t.Errorf("idle = %v, want 10s", m.Idle())
	}

	// Interaction resets the window.
	m.RecordInteraction(t0.Add(15 * time.Second))
	m.Tick(t0.Add(20 * time.Second))
	if m.Idle() != 10*time.Second {
		t.Errorf("idle after interaction = %v, want still 10s", m.Idle())
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor(DefaultLoadWeights())
	m.RecordError()
	m.RecordHesitation(time.Minute)
	m.Reset()

	if m.Errors() != 0 || m.Hesitation() != 0 || m.Idle() != 0 {
		t.Error("Reset did not zero all counters")
	}
	if m.Level() != LoadLow {
		t.Errorf("level after reset = %v, want low", m.Level())
	}
}
