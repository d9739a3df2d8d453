// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anirudh/studyloop/ent/lessonevent"
)

// LessonEvent is the model entity for the LessonEvent schema.
type LessonEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence number, increasing across all event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// Empty for lesson-level events
	ChapterID string `json:"chapter_id,omitempty"`
	// chapter_completed, seek, or finished
	Action string `json:"action,omitempty"`
	// Playhead position when the event fired
	PositionMs int64 `json:"position_ms,omitempty"`
	// Chapter watch progress 0-100
	WatchedPct   float64 `json:"watched_pct,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonevent.FieldWatchedPct:
			values[i] = new(sql.NullFloat64)
		case lessonevent.FieldID, lessonevent.FieldSequence, lessonevent.FieldPositionMs:
			values[i] = new(sql.NullInt64)
		case lessonevent.FieldLessonID, lessonevent.FieldChapterID, lessonevent.FieldAction:
			values[i] = new(sql.NullString)
		case lessonevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonEvent fields.
func (_m *LessonEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case lessonevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case lessonevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessonevent.FieldChapterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_id", values[i])
			} else if value.Valid {
				_m.ChapterID = value.String
			}
		case lessonevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case lessonevent.FieldPositionMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position_ms", values[i])
			} else if value.Valid {
				_m.PositionMs = value.Int64
			}
		case lessonevent.FieldWatchedPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field watched_pct", values[i])
			} else if value.Valid {
				_m.WatchedPct = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LessonEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonEvent.
// Note that you need to call LessonEvent.Unwrap() before calling this method if this LessonEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonEvent) Update() *LessonEventUpdateOne {
	return NewLessonEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonEvent) Unwrap() *LessonEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LessonEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("chapter_id=")
	builder.WriteString(_m.ChapterID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("position_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.PositionMs))
	builder.WriteString(", ")
	builder.WriteString("watched_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.WatchedPct))
	builder.WriteByte(')')
	return builder.String()
}

// LessonEvents is a parsable slice of LessonEvent.
type LessonEvents []*LessonEvent
