// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldAnswered holds the string denoting the answered field in the database.
	FieldAnswered = "answered"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimedOut holds the string denoting the timed_out field in the database.
	FieldTimedOut = "timed_out"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldMaxScore holds the string denoting the max_score field in the database.
	FieldMaxScore = "max_score"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldFinalLevel holds the string denoting the final_level field in the database.
	FieldFinalLevel = "final_level"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldQuestionCount,
	FieldAnswered,
	FieldCorrect,
	FieldTimedOut,
	FieldScore,
	FieldMaxScore,
	FieldDurationSecs,
	FieldFinalLevel,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultQuestionCount holds the default value on creation for the "question_count" field.
	DefaultQuestionCount int
	// DefaultAnswered holds the default value on creation for the "answered" field.
	DefaultAnswered int
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect int
	// DefaultTimedOut holds the default value on creation for the "timed_out" field.
	DefaultTimedOut int
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultMaxScore holds the default value on creation for the "max_score" field.
	DefaultMaxScore int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultFinalLevel holds the default value on creation for the "final_level" field.
	DefaultFinalLevel string
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByAnswered orders the results by the answered field.
func ByAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswered, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimedOut orders the results by the timed_out field.
func ByTimedOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimedOut, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByMaxScore orders the results by the max_score field.
func ByMaxScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScore, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByFinalLevel orders the results by the final_level field.
func ByFinalLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalLevel, opts...).ToFunc()
}
