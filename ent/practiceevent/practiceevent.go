// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practiceevent type in the database.
	Label = "practice_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldHintUsed holds the string denoting the hint_used field in the database.
	FieldHintUsed = "hint_used"
	// FieldSolutionShown holds the string denoting the solution_shown field in the database.
	FieldSolutionShown = "solution_shown"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// FieldLoadLevel holds the string denoting the load_level field in the database.
	FieldLoadLevel = "load_level"
	// Table holds the table name of the practiceevent in the database.
	Table = "practice_events"
)

// Columns holds all SQL columns for practiceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuestionID,
	FieldTopic,
	FieldCorrect,
	FieldHintUsed,
	FieldSolutionShown,
	FieldAttempts,
	FieldTimeMs,
	FieldLoadLevel,
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
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultHintUsed holds the default value on creation for the "hint_used" field.
	DefaultHintUsed bool
	// DefaultSolutionShown holds the default value on creation for the "solution_shown" field.
	DefaultSolutionShown bool
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultLoadLevel holds the default value on creation for the "load_level" field.
	DefaultLoadLevel string
)

// OrderOption defines the ordering options for the PracticeEvent queries.
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

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByHintUsed orders the results by the hint_used field.
func ByHintUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintUsed, opts...).ToFunc()
}

// BySolutionShown orders the results by the solution_shown field.
func BySolutionShown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionShown, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}

// ByLoadLevel orders the results by the load_level field.
func ByLoadLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadLevel, opts...).ToFunc()
}
