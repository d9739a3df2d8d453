package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("question_count").
			Default(0).
			Comment("Questions in the session"),
		field.Int("answered").
			Default(0).
			Comment("Questions answered (on end only)"),
		field.Int("correct").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Int("timed_out").
			Default(0).
			Comment("Questions that hit their time limit (on end only)"),
		field.Int("score").
			Default(0).
			Comment("Points earned (on end only)"),
		field.Int("max_score").
			Default(0).
			Comment("Points available"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.String("final_level").
			Default("").
			Comment("Difficulty level when the session ended"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
