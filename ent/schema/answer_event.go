package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer submitted (or timed out) within a
// quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty(),
		field.String("question_type").
			NotEmpty().
			Comment("multiple_choice, true_false, short_answer, fill_blank, matching"),
		field.String("topic").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_answer").
			Default("").
			Comment("Canonical correct answer"),
		field.String("given_answer").
			Default("").
			Comment("What the learner submitted; empty on timeout"),
		field.Bool("correct"),
		field.Bool("timed_out").
			Default(false).
			Comment("Question clock expired before a submission"),
		field.Bool("flagged").
			Default(false).
			Comment("Marked for review when the answer was recorded"),
		field.Int("time_ms").
			Comment("Milliseconds spent on the question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("correct"),
	}
}
