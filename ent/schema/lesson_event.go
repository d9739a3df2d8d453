package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records lesson playback milestones: chapters completed,
// seeks, and lesson finishes.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty(),
		field.String("chapter_id").
			Default("").
			Comment("Empty for lesson-level events"),
		field.String("action").
			NotEmpty().
			Comment("chapter_completed, seek, or finished"),
		field.Int64("position_ms").
			Default(0).
			Comment("Playhead position when the event fired"),
		field.Float("watched_pct").
			Default(0).
			Comment("Chapter watch progress 0-100"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("action"),
	}
}
