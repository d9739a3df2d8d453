// Package quiz implements the adaptive quiz engine: answer validation,
// rolling-window difficulty adaptation, and the session state machine that
// sequences questions, records answers, and produces the final summary.
package quiz

// QuestionType identifies how a question is presented and answered.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
	FillBlank      QuestionType = "fill_blank"
	Matching       QuestionType = "matching"
)

// HasOptions reports whether the type presents a fixed option list.
func (t QuestionType) HasOptions() bool {
	return t == MultipleChoice || t == TrueFalse || t == Matching
}

// Question is a single quiz item. Questions are built by the content
// source and are read-only for the duration of a session.
type Question struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"prompt"`
	Options []string     `json:"options,omitempty"`
	Correct Answer       `json:"-"`
	// CorrectValues is the serialized form of Correct: one element for
	// single-answer questions, several for multi-select.
	CorrectValues []string   `json:"correct"`
	Difficulty    Difficulty `json:"difficulty"`
	Topic         string     `json:"topic"`
	// TimeLimitSecs bounds the time a learner may spend; 0 means no limit.
	TimeLimitSecs int    `json:"time_limit_secs,omitempty"`
	Points        int    `json:"points"`
	Hint          string `json:"hint,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
}

// CorrectAnswer returns the canonical answer, reconstructing it from
// CorrectValues when the question came off the wire.
func (q *Question) CorrectAnswer() Answer {
	if !q.Correct.IsUnanswered() {
		return q.Correct
	}
	switch len(q.CorrectValues) {
	case 0:
		return Unanswered()
	case 1:
		return Single(q.CorrectValues[0])
	default:
		return Multi(q.CorrectValues...)
	}
}
