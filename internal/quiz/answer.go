package quiz

import "strings"

// answerKind distinguishes the sentinel states from real submissions.
// "No answer yet" and "ran out of time" are different facts and must not
// collapse into an empty string.
type answerKind int

const (
	kindUnanswered answerKind = iota
	kindTimeout
	kindSingle
	kindMulti
)

// Answer is a learner submission: a single value, a set of values (for
// multi-select), or one of the two sentinels.
type Answer struct {
	kind   answerKind
	values []string
}

// Unanswered is the sentinel for a question never submitted.
func Unanswered() Answer {
	return Answer{kind: kindUnanswered}
}

// TimedOut is the sentinel recorded when a question's time limit expires.
// It always validates as incorrect.
func TimedOut() Answer {
	return Answer{kind: kindTimeout}
}

// Single wraps one submitted value.
func Single(value string) Answer {
	return Answer{kind: kindSingle, values: []string{value}}
}

// Multi wraps a multi-select submission. The order of values carries no
// meaning.
func Multi(values ...string) Answer {
	vs := make([]string, len(values))
	copy(vs, values)
	return Answer{kind: kindMulti, values: vs}
}

// IsUnanswered reports whether this is the never-submitted sentinel.
func (a Answer) IsUnanswered() bool { return a.kind == kindUnanswered }

// IsTimeout reports whether this is the time-expired sentinel.
func (a Answer) IsTimeout() bool { return a.kind == kindTimeout }

// IsMulti reports whether this is a multi-select submission.
func (a Answer) IsMulti() bool { return a.kind == kindMulti }

// Value returns the single submitted value, or "" for sentinels and
// multi-select answers.
func (a Answer) Value() string {
	if a.kind == kindSingle {
		return a.values[0]
	}
	return ""
}

// Values returns the submitted values. Sentinels return nil.
func (a Answer) Values() []string {
	if a.kind != kindSingle && a.kind != kindMulti {
		return nil
	}
	vs := make([]string, len(a.values))
	copy(vs, a.values)
	return vs
}

// String renders the answer for event logs and feedback lines.
func (a Answer) String() string {
	switch a.kind {
	case kindUnanswered:
		return "(unanswered)"
	case kindTimeout:
		return "(timed out)"
	case kindMulti:
		return strings.Join(a.values, ", ")
	default:
		return a.values[0]
	}
}
