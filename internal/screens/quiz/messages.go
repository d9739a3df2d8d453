package quiz

import (
	"time"

	quizcore "github.com/anirudh/studyloop/internal/quiz"
)

// questionsReadyMsg is sent when the content source has produced the
// question set (or failed to).
type questionsReadyMsg struct {
	Questions []quizcore.Question
	Level     quizcore.Difficulty
	History   []bool
	Err       error
}

// tickMsg is sent every second to drive the session clocks.
type tickMsg time.Time

// feedbackDoneMsg dismisses the per-question feedback overlay.
type feedbackDoneMsg struct{}

// sessionDoneMsg is sent after the finished session has been persisted.
type sessionDoneMsg struct {
	Summary *quizcore.Summary
}
