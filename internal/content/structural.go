package content

import (
	"fmt"

	"github.com/anirudh/studyloop/internal/quiz"
)

const (
	maxPromptLen      = 500
	maxExplanationLen = 1000
)

// validateQuestions checks structural soundness of a question set:
// required fields present, option lists consistent with the question
// type, and correct answers drawn from the options where options exist.
func validateQuestions(questions []quiz.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("no questions")
	}

	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %d (%s): %w", i, q.ID, err)
		}
	}
	return nil
}

func validateQuestion(q quiz.Question) error {
	if q.Prompt == "" {
		return fmt.Errorf("prompt is empty")
	}
	if len(q.Prompt) > maxPromptLen {
		return fmt.Errorf("prompt exceeds %d characters", maxPromptLen)
	}
	if len(q.Explanation) > maxExplanationLen {
		return fmt.Errorf("explanation exceeds %d characters", maxExplanationLen)
	}

	switch q.Type {
	case quiz.MultipleChoice, quiz.TrueFalse, quiz.ShortAnswer, quiz.FillBlank, quiz.Matching:
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}

	if len(q.CorrectValues) == 0 {
		return fmt.Errorf("no correct answer")
	}

	if q.Type.HasOptions() {
		if len(q.Options) < 2 {
			return fmt.Errorf("%s needs at least 2 options", q.Type)
		}
		if q.Type == quiz.TrueFalse && len(q.Options) != 2 {
			return fmt.Errorf("true_false needs exactly 2 options")
		}
		for _, v := range q.CorrectValues {
			if !containsOption(q.Options, v) {
				return fmt.Errorf("correct answer %q is not among the options", v)
			}
		}
	} else if len(q.Options) > 0 {
		return fmt.Errorf("%s must not carry options", q.Type)
	}

	if q.Points < 0 {
		return fmt.Errorf("negative points")
	}
	if q.TimeLimitSecs < 0 {
		return fmt.Errorf("negative time limit")
	}
	return nil
}

// validateLesson checks that a lesson has a title and at least one
// chapter, and that markers fall inside the timeline. Chapter overlap is
// rejected later by the timeline constructor.
func validateLesson(l *Lesson) error {
	if l.Title == "" {
		return fmt.Errorf("title is empty")
	}
	if len(l.Chapters) == 0 {
		return fmt.Errorf("no chapters")
	}

	var end float64
	for i, c := range l.Chapters {
		if c.ID == "" {
			return fmt.Errorf("chapter %d has no ID", i)
		}
		if c.End <= c.Start {
			return fmt.Errorf("chapter %q ends before it starts", c.ID)
		}
		if c.End > end {
			end = c.End
		}
	}

	for _, m := range l.Markers {
		if m.Time < 0 || m.Time > end {
			return fmt.Errorf("marker %q at %.1fs is outside the lesson", m.ID, m.Time)
		}
	}
	return nil
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
