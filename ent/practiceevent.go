// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anirudh/studyloop/ent/practiceevent"
)

// PracticeEvent is the model entity for the PracticeEvent schema.
type PracticeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence number, increasing across all event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// HintUsed holds the value of the "hint_used" field.
	HintUsed bool `json:"hint_used,omitempty"`
	// SolutionShown holds the value of the "solution_shown" field.
	SolutionShown bool `json:"solution_shown,omitempty"`
	// Submissions on this question including the final one
	Attempts int `json:"attempts,omitempty"`
	// Milliseconds spent before resolution
	TimeMs int `json:"time_ms,omitempty"`
	// low, medium, high, or overload when resolved
	LoadLevel    string `json:"load_level,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldCorrect, practiceevent.FieldHintUsed, practiceevent.FieldSolutionShown:
			values[i] = new(sql.NullBool)
		case practiceevent.FieldID, practiceevent.FieldSequence, practiceevent.FieldAttempts, practiceevent.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case practiceevent.FieldSessionID, practiceevent.FieldQuestionID, practiceevent.FieldTopic, practiceevent.FieldLoadLevel:
			values[i] = new(sql.NullString)
		case practiceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeEvent fields.
func (_m *PracticeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practiceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case practiceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case practiceevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case practiceevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case practiceevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case practiceevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case practiceevent.FieldHintUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hint_used", values[i])
			} else if value.Valid {
				_m.HintUsed = value.Bool
			}
		case practiceevent.FieldSolutionShown:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field solution_shown", values[i])
			} else if value.Valid {
				_m.SolutionShown = value.Bool
			}
		case practiceevent.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case practiceevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		case practiceevent.FieldLoadLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field load_level", values[i])
			} else if value.Valid {
				_m.LoadLevel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeEvent.
// Note that you need to call PracticeEvent.Unwrap() before calling this method if this PracticeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeEvent) Update() *PracticeEventUpdateOne {
	return NewPracticeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeEvent) Unwrap() *PracticeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("hint_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintUsed))
	builder.WriteString(", ")
	builder.WriteString("solution_shown=")
	builder.WriteString(fmt.Sprintf("%v", _m.SolutionShown))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteString(", ")
	builder.WriteString("load_level=")
	builder.WriteString(_m.LoadLevel)
	builder.WriteByte(')')
	return builder.String()
}

// PracticeEvents is a parsable slice of PracticeEvent.
type PracticeEvents []*PracticeEvent
