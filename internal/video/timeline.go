// Package video maps lesson playback time onto chapters and markers and
// tracks per-chapter watch progress. It is a pure state model: playback
// arrives as discrete Advance/Seek events, and the fields derived from
// them (active chapter, active marker, chapter progress) are recomputed
// synchronously. Rendering and smoothing belong to the caller.
package video

import (
	"fmt"
	"sort"
	"time"
)

// Chapter is a time-bounded, non-overlapping segment of a lesson.
// Membership uses the half-open interval [Start, End): at a shared
// boundary instant, only the later chapter is active.
type Chapter struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Start float64 `json:"start"` // seconds
	End   float64 `json:"end"`   // seconds
}

// Duration returns the chapter length in seconds.
func (c Chapter) Duration() float64 { return c.End - c.Start }

// Contains reports half-open interval membership.
func (c Chapter) Contains(t float64) bool { return t >= c.Start && t < c.End }

// Marker is a single timestamp annotation on the timeline.
type Marker struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Time  float64 `json:"time"` // seconds
	Kind  string  `json:"kind,omitempty"`
}

// completionThreshold is the watch fraction at which a chapter counts as
// completed. Slightly under 1.0 so the last tick granule is forgiven.
const completionThreshold = 0.95

// Timeline synchronizes a playback position against a static chapter and
// marker list.
type Timeline struct {
	chapters []Chapter
	markers  []Marker
	current  float64

	// watched accumulates played (not sought-over) seconds per chapter
	// index.
	watched   []float64
	completed []bool
}

// NewTimeline builds a timeline, sorting chapters and markers by time.
// Overlapping chapters are rejected; the "at most one active chapter"
// guarantee depends on it.
func NewTimeline(chapters []Chapter, markers []Marker) (*Timeline, error) {
	cs := make([]Chapter, len(chapters))
	copy(cs, chapters)
	sort.Slice(cs, func(i, j int) bool { return cs[i].Start < cs[j].Start })
	for i := 1; i < len(cs); i++ {
		if cs[i].Start < cs[i-1].End {
			return nil, fmt.Errorf("chapters %q and %q overlap", cs[i-1].ID, cs[i].ID)
		}
	}

	ms := make([]Marker, len(markers))
	copy(ms, markers)
	sort.Slice(ms, func(i, j int) bool { return ms[i].Time < ms[j].Time })

	return &Timeline{
		chapters:  cs,
		markers:   ms,
		watched:   make([]float64, len(cs)),
		completed: make([]bool, len(cs)),
	}, nil
}

// CurrentTime returns the playback position in seconds.
func (tl *Timeline) CurrentTime() float64 { return tl.current }

// Chapters returns the ordered chapter list.
func (tl *Timeline) Chapters() []Chapter { return tl.chapters }

// Markers returns the time-ordered marker list.
func (tl *Timeline) Markers() []Marker { return tl.markers }

// Duration returns the end of the last chapter, or the last marker time
// when there are no chapters.
func (tl *Timeline) Duration() float64 {
	if n := len(tl.chapters); n > 0 {
		return tl.chapters[n-1].End
	}
	if n := len(tl.markers); n > 0 {
		return tl.markers[n-1].Time
	}
	return 0
}

// Advance moves playback forward by dt of actual watching, accumulating
// watch progress for the chapter the playhead moves through.
func (tl *Timeline) Advance(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}
	if i := tl.activeIndex(); i >= 0 {
		tl.watched[i] += secs
		if d := tl.chapters[i].Duration(); d > 0 && tl.watched[i] > d {
			tl.watched[i] = d
		}
		if tl.WatchProgress(tl.chapters[i].ID) >= completionThreshold*100 {
			tl.completed[i] = true
		}
	}
	tl.current += secs
	if d := tl.Duration(); tl.current > d {
		tl.current = d
	}
}

// Seek relocates the playhead immediately. Skipped-over material does not
// count as watched.
func (tl *Timeline) Seek(t float64) {
	if t < 0 {
		t = 0
	}
	if d := tl.Duration(); t > d {
		t = d
	}
	tl.current = t
}

// SeekToChapter relocates to a chapter's start time. This backs
// click-to-seek on a table-of-contents entry.
func (tl *Timeline) SeekToChapter(id string) bool {
	for _, c := range tl.chapters {
		if c.ID == id {
			tl.Seek(c.Start)
			return true
		}
	}
	return false
}

// SeekToMarker relocates to a marker's timestamp.
func (tl *Timeline) SeekToMarker(id string) bool {
	for _, m := range tl.markers {
		if m.ID == id {
			tl.Seek(m.Time)
			return true
		}
	}
	return false
}

// ActiveChapter returns the chapter containing the playhead, or nil when
// between chapters.
func (tl *Timeline) ActiveChapter() *Chapter {
	if i := tl.activeIndex(); i >= 0 {
		return &tl.chapters[i]
	}
	return nil
}

// ActiveMarker returns the most recently passed marker: the last marker
// with time <= current. Nil before the first marker.
func (tl *Timeline) ActiveMarker() *Marker {
	var active *Marker
	for i := range tl.markers {
		if tl.markers[i].Time <= tl.current {
			active = &tl.markers[i]
		} else {
			break
		}
	}
	return active
}

// ChapterProgress returns the playhead's position within the active
// chapter as a percentage clamped to [0, 100], and whether a chapter is
// active. Zero or negative chapter duration reports 0 rather than
// dividing by it.
func (tl *Timeline) ChapterProgress() (float64, bool) {
	c := tl.ActiveChapter()
	if c == nil {
		return 0, false
	}
	d := c.Duration()
	if d <= 0 {
		return 0, true
	}
	p := (tl.current - c.Start) / d * 100
	return clampPercent(p), true
}

// WatchProgress returns accumulated watch percentage for a chapter id,
// clamped to [0, 100].
func (tl *Timeline) WatchProgress(id string) float64 {
	for i, c := range tl.chapters {
		if c.ID != id {
			continue
		}
		d := c.Duration()
		if d <= 0 {
			return 0
		}
		return clampPercent(tl.watched[i] / d * 100)
	}
	return 0
}

// WatchedSeconds returns accumulated watch seconds keyed by chapter id,
// for persisting resume state.
func (tl *Timeline) WatchedSeconds() map[string]float64 {
	out := make(map[string]float64, len(tl.chapters))
	for i, c := range tl.chapters {
		if tl.watched[i] > 0 {
			out[c.ID] = tl.watched[i]
		}
	}
	return out
}

// CompletedChapters returns the ids of chapters watched to completion,
// in chapter order.
func (tl *Timeline) CompletedChapters() []string {
	var out []string
	for i, c := range tl.chapters {
		if tl.completed[i] {
			out = append(out, c.ID)
		}
	}
	return out
}

// Restore reinstates saved playback state. Unknown chapter ids are
// ignored; watched seconds are clamped to each chapter's duration.
func (tl *Timeline) Restore(position float64, watched map[string]float64, completed []string) {
	tl.Seek(position)
	for i, c := range tl.chapters {
		if secs, ok := watched[c.ID]; ok && secs > 0 {
			if d := c.Duration(); d > 0 && secs > d {
				secs = d
			}
			tl.watched[i] = secs
		}
		for _, id := range completed {
			if id == c.ID {
				tl.completed[i] = true
			}
		}
	}
}

// Completed reports whether a chapter has been watched to completion.
func (tl *Timeline) Completed(id string) bool {
	for i, c := range tl.chapters {
		if c.ID == id {
			return tl.completed[i]
		}
	}
	return false
}

func (tl *Timeline) activeIndex() int {
	for i := range tl.chapters {
		if tl.chapters[i].Contains(tl.current) {
			return i
		}
	}
	return -1
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
