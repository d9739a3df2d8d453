package video

import (
	"testing"
	"time"
)

func testTimeline(t *testing.T) *Timeline {
	t.Helper()
	tl, err := NewTimeline(
		[]Chapter{
			{ID: "c1", Title: "Intro", Start: 0, End: 10},
			{ID: "c2", Title: "Core", Start: 10, End: 20},
			{ID: "c3", Title: "Wrap-up", Start: 25, End: 30}, // gap before this one
		},
		[]Marker{
			{ID: "m1", Title: "Definition", Time: 2},
			{ID: "m2", Title: "Example", Time: 12},
			{ID: "m3", Title: "Recap", Time: 26},
		},
	)
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	return tl
}

func TestNewTimeline_RejectsOverlap(t *testing.T) {
	_, err := NewTimeline([]Chapter{
		{ID: "a", Start: 0, End: 10},
		{ID: "b", Start: 5, End: 15},
	}, nil)
	if err == nil {
		t.Fatal("overlapping chapters accepted")
	}
}

func TestActiveChapter_HalfOpenBoundary(t *testing.T) {
	tl := testTimeline(t)

	// At the shared boundary 10, only the later chapter is active.
	tl.Seek(10)
	c := tl.ActiveChapter()
	if c == nil || c.ID != "c2" {
		t.Fatalf("active at t=10 = %v, want c2", c)
	}

	tl.Seek(9.99)
	if c := tl.ActiveChapter(); c == nil || c.ID != "c1" {
		t.Errorf("active at t=9.99 = %v, want c1", c)
	}
}

func TestActiveChapter_ExclusivityAndGaps(t *testing.T) {
	tl := testTimeline(t)

	for _, tc := range []float64{0, 5, 10, 15, 22, 26, 29.5} {
		tl.Seek(tc)
		count := 0
		for _, c := range tl.Chapters() {
			if c.Contains(tc) {
				count++
			}
		}
		if count > 1 {
			t.Errorf("t=%v: %d chapters active, want at most 1", tc, count)
		}
	}

	// In the 20..25 gap no chapter is active.
	tl.Seek(22)
	if c := tl.ActiveChapter(); c != nil {
		t.Errorf("active in gap = %v, want nil", c)
	}
	if _, ok := tl.ChapterProgress(); ok {
		t.Error("ChapterProgress reported a value in the gap")
	}
}

func TestActiveMarker_LastPassed(t *testing.T) {
	tl := testTimeline(t)

	tl.Seek(1)
	if m := tl.ActiveMarker(); m != nil {
		t.Errorf("marker before first timestamp = %v, want nil", m)
	}

	tl.Seek(2)
	if m := tl.ActiveMarker(); m == nil || m.ID != "m1" {
		t.Errorf("marker at t=2 = %v, want m1", m)
	}

	tl.Seek(15)
	if m := tl.ActiveMarker(); m == nil || m.ID != "m2" {
		t.Errorf("marker at t=15 = %v, want m2 (most recently passed)", m)
	}
}

func TestChapterProgress_Clamped(t *testing.T) {
	tl := testTimeline(t)

	tl.Seek(15)
	p, ok := tl.ChapterProgress()
	if !ok || p != 50 {
		t.Errorf("progress at t=15 = %v/%v, want 50", p, ok)
	}

	// Progress never leaves [0,100] for any position.
	for _, tc := range []float64{0, 3, 9.9, 10, 19.999, 27, 30} {
		tl.Seek(tc)
		if p, ok := tl.ChapterProgress(); ok && (p < 0 || p > 100) {
			t.Errorf("t=%v: progress %v out of [0,100]", tc, p)
		}
	}
}

func TestChapterProgress_ZeroDuration(t *testing.T) {
	tl, err := NewTimeline([]Chapter{{ID: "z", Start: 5, End: 5}}, nil)
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	// Degenerate chapter: membership is empty under [start, end), so no
	// chapter is active and nothing divides by the zero duration.
	tl.Seek(5)
	if p, ok := tl.ChapterProgress(); ok && p != 0 {
		t.Errorf("zero-duration progress = %v, want 0", p)
	}
	if got := tl.WatchProgress("z"); got != 0 {
		t.Errorf("zero-duration watch progress = %v, want 0", got)
	}
}

func TestSeekToChapterAndMarker(t *testing.T) {
	tl := testTimeline(t)

	if !tl.SeekToChapter("c2") {
		t.Fatal("SeekToChapter(c2) failed")
	}
	if tl.CurrentTime() != 10 {
		t.Errorf("time after chapter click = %v, want 10", tl.CurrentTime())
	}

	if !tl.SeekToMarker("m3") {
		t.Fatal("SeekToMarker(m3) failed")
	}
	if tl.CurrentTime() != 26 {
		t.Errorf("time after marker click = %v, want 26", tl.CurrentTime())
	}

	if tl.SeekToChapter("nope") || tl.SeekToMarker("nope") {
		t.Error("unknown id accepted")
	}
}

func TestSeek_ClampsToTimeline(t *testing.T) {
	tl := testTimeline(t)
	tl.Seek(-3)
	if tl.CurrentTime() != 0 {
		t.Errorf("negative seek gave %v, want 0", tl.CurrentTime())
	}
	tl.Seek(999)
	if tl.CurrentTime() != 30 {
		t.Errorf("past-end seek gave %v, want 30", tl.CurrentTime())
	}
}

func TestWatchProgress_AccumulatesOnlyPlayback(t *testing.T) {
	tl := testTimeline(t)

	// Watch 5 of chapter 1's 10 seconds.
	for i := 0; i < 5; i++ {
		tl.Advance(time.Second)
	}
	if got := tl.WatchProgress("c1"); got != 50 {
		t.Errorf("c1 watch progress = %v, want 50", got)
	}

	// Seeking over the rest of c1 adds nothing.
	tl.Seek(12)
	if got := tl.WatchProgress("c1"); got != 50 {
		t.Errorf("c1 watch progress after seek = %v, want still 50", got)
	}
	if tl.Completed("c1") {
		t.Error("c1 completed without being watched")
	}

	// Watching chapter 2 end to end completes it.
	tl.Seek(10)
	for i := 0; i < 10; i++ {
		tl.Advance(time.Second)
	}
	if !tl.Completed("c2") {
		t.Errorf("c2 not completed at %v%% watched", tl.WatchProgress("c2"))
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	tl := testTimeline(t)

	for i := 0; i < 10; i++ {
		tl.Advance(time.Second)
	}
	tl.Seek(12)
	tl.Advance(3 * time.Second)

	fresh := testTimeline(t)
	fresh.Restore(tl.CurrentTime(), tl.WatchedSeconds(), tl.CompletedChapters())

	if fresh.CurrentTime() != tl.CurrentTime() {
		t.Errorf("restored position = %v, want %v", fresh.CurrentTime(), tl.CurrentTime())
	}
	if got := fresh.WatchProgress("c1"); got != 100 {
		t.Errorf("restored c1 watch progress = %v, want 100", got)
	}
	if got := fresh.WatchProgress("c2"); got != 30 {
		t.Errorf("restored c2 watch progress = %v, want 30", got)
	}
	if !fresh.Completed("c1") || fresh.Completed("c2") {
		t.Errorf("restored completion c1=%v c2=%v, want true/false",
			fresh.Completed("c1"), fresh.Completed("c2"))
	}
}

func TestRestore_ClampsAndIgnoresUnknown(t *testing.T) {
	tl := testTimeline(t)
	tl.Restore(999, map[string]float64{"c1": 50, "ghost": 4}, []string{"ghost", "c2"})

	if tl.CurrentTime() != 30 {
		t.Errorf("restored position = %v, want clamped 30", tl.CurrentTime())
	}
	if got := tl.WatchProgress("c1"); got != 100 {
		t.Errorf("over-long watched gave %v%%, want clamped 100", got)
	}
	if !tl.Completed("c2") {
		t.Error("c2 completion not restored")
	}
	if tl.Completed("ghost") {
		t.Error("unknown id reported completed")
	}
}
