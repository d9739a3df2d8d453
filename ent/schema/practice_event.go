package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records one question worked during a timed practice run,
// including the cognitive-load reading at the time.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("topic").
			Default(""),
		field.Bool("correct"),
		field.Bool("hint_used").
			Default(false),
		field.Bool("solution_shown").
			Default(false),
		field.Int("attempts").
			Default(1).
			Comment("Submissions on this question including the final one"),
		field.Int("time_ms").
			Comment("Milliseconds spent before resolution"),
		field.String("load_level").
			Default("").
			Comment("low, medium, high, or overload when resolved"),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
		index.Fields("load_level"),
	}
}
