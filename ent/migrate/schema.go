// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString, Default: ""},
		{Name: "given_answer", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "timed_out", Type: field.TypeBool, Default: false},
		{Name: "flagged", Type: field.TypeBool, Default: false},
		{Name: "time_ms", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_topic",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[6]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[11]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "chapter_id", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "position_ms", Type: field.TypeInt64, Default: 0},
		{Name: "watched_pct", Type: field.TypeFloat64, Default: 0},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2]},
			},
			{
				Name:    "lessonevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[3]},
			},
			{
				Name:    "lessonevent_action",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[5]},
			},
		},
	}
	// PracticeEventsColumns holds the columns for the "practice_events" table.
	PracticeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "hint_used", Type: field.TypeBool, Default: false},
		{Name: "solution_shown", Type: field.TypeBool, Default: false},
		{Name: "attempts", Type: field.TypeInt, Default: 1},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "load_level", Type: field.TypeString, Default: ""},
	}
	// PracticeEventsTable holds the schema information for the "practice_events" table.
	PracticeEventsTable = &schema.Table{
		Name:       "practice_events",
		Columns:    PracticeEventsColumns,
		PrimaryKey: []*schema.Column{PracticeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[1]},
			},
			{
				Name:    "practiceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[2]},
			},
			{
				Name:    "practiceevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[3]},
			},
			{
				Name:    "practiceevent_correct",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[6]},
			},
			{
				Name:    "practiceevent_load_level",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[11]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "timed_out", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "max_score", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "final_level", Type: field.TypeString, Default: ""},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		LlmRequestEventsTable,
		LessonEventsTable,
		PracticeEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
