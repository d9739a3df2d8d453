// Package content supplies the material the study screens run on:
// question sets for quiz and practice sessions, and chaptered lessons
// for the player. Material comes from JSON fixture files or from an LLM
// generator; both paths produce the same domain types.
package content

import (
	"github.com/anirudh/studyloop/internal/quiz"
	"github.com/anirudh/studyloop/internal/video"
)

// Lesson is a chaptered piece of study material with timeline markers.
type Lesson struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Topic    string          `json:"topic,omitempty"`
	Chapters []video.Chapter `json:"chapters"`
	Markers  []video.Marker  `json:"markers,omitempty"`
	// Notes holds per-chapter study text keyed by chapter ID.
	Notes map[string]string `json:"notes,omitempty"`
}

// Timeline builds the playback timeline for this lesson.
func (l *Lesson) Timeline() (*video.Timeline, error) {
	return video.NewTimeline(l.Chapters, l.Markers)
}

// SetRequest describes the question set a caller wants.
type SetRequest struct {
	Topic string
	Count int
	Level quiz.Difficulty
	// Avoid lists prompts already seen, so generated sets don't repeat.
	Avoid []string
}
