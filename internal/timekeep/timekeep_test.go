package timekeep

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestStopwatch_AccumulatesWhileRunning(t *testing.T) {
	var sw Stopwatch
	sw.Start(t0)
	sw.Advance(t0.Add(3 * time.Second))
	sw.Advance(t0.Add(5 * time.Second))

	if got := sw.Elapsed(); got != 5*time.Second {
		t.Errorf("Elapsed = %v, want 5s", got)
	}
}

func TestStopwatch_PauseFreezesElapsed(t *testing.T) {
	var sw Stopwatch
	sw.Start(t0)
	sw.Pause(t0.Add(2 * time.Second))

	// Ticks during the pause must not count.
	sw.Advance(t0.Add(10 * time.Second))
	if got := sw.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed after paused tick = %v, want 2s", got)
	}

	sw.Resume(t0.Add(60 * time.Second))
	sw.Advance(t0.Add(61 * time.Second))
	if got := sw.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed after resume = %v, want 3s", got)
	}
}

func TestStopwatch_BackwardClockIgnored(t *testing.T) {
	var sw Stopwatch
	sw.Start(t0)
	sw.Advance(t0.Add(-time.Minute))
	if got := sw.Elapsed(); got != 0 {
		t.Errorf("Elapsed after backward tick = %v, want 0", got)
	}
}

func TestCountdown_ExpiresAtZero(t *testing.T) {
	cd := NewCountdown(5 * time.Second)
	cd.Start(t0)
	cd.Advance(t0.Add(3 * time.Second))
	if cd.Expired() {
		t.Fatal("expired with 2s remaining")
	}
	cd.Advance(t0.Add(8 * time.Second))
	if !cd.Expired() {
		t.Fatal("not expired after budget elapsed")
	}
	if got := cd.Remaining(); got != 0 {
		t.Errorf("Remaining = %v, want 0 (clamped)", got)
	}
}

func TestCountdown_PauseStopsDrain(t *testing.T) {
	cd := NewCountdown(10 * time.Second)
	cd.Start(t0)
	cd.Advance(t0.Add(4 * time.Second))
	cd.Pause(t0.Add(4 * time.Second))

	cd.Advance(t0.Add(20 * time.Second))
	if got := cd.Remaining(); got != 6*time.Second {
		t.Errorf("Remaining after paused tick = %v, want 6s", got)
	}

	cd.Resume(t0.Add(30 * time.Second))
	cd.Advance(t0.Add(31 * time.Second))
	if got := cd.Remaining(); got != 5*time.Second {
		t.Errorf("Remaining after resume = %v, want 5s", got)
	}
}

func TestCountdown_ZeroBudgetNeverExpires(t *testing.T) {
	cd := NewCountdown(0)
	cd.Start(t0)
	cd.Advance(t0.Add(time.Hour))
	if cd.Expired() {
		t.Error("unlimited countdown expired")
	}
	if cd.Limited() {
		t.Error("zero-budget countdown reported as limited")
	}
}
