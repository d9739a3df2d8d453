// Code generated by ent, DO NOT EDIT.

package lessonevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonevent type in the database.
	Label = "lesson_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldChapterID holds the string denoting the chapter_id field in the database.
	FieldChapterID = "chapter_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldPositionMs holds the string denoting the position_ms field in the database.
	FieldPositionMs = "position_ms"
	// FieldWatchedPct holds the string denoting the watched_pct field in the database.
	FieldWatchedPct = "watched_pct"
	// Table holds the table name of the lessonevent in the database.
	Table = "lesson_events"
)

// Columns holds all SQL columns for lessonevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLessonID,
	FieldChapterID,
	FieldAction,
	FieldPositionMs,
	FieldWatchedPct,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// DefaultChapterID holds the default value on creation for the "chapter_id" field.
	DefaultChapterID string
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultPositionMs holds the default value on creation for the "position_ms" field.
	DefaultPositionMs int64
	// DefaultWatchedPct holds the default value on creation for the "watched_pct" field.
	DefaultWatchedPct float64
)

// OrderOption defines the ordering options for the LessonEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByChapterID orders the results by the chapter_id field.
func ByChapterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByPositionMs orders the results by the position_ms field.
func ByPositionMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionMs, opts...).ToFunc()
}

// ByWatchedPct orders the results by the watched_pct field.
func ByWatchedPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWatchedPct, opts...).ToFunc()
}
