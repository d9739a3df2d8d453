// Code generated by ent, DO NOT EDIT.

package lessonevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anirudh/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldLessonID, v))
}

// ChapterID applies equality check predicate on the "chapter_id" field. It's identical to ChapterIDEQ.
func ChapterID(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldChapterID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldAction, v))
}

// PositionMs applies equality check predicate on the "position_ms" field. It's identical to PositionMsEQ.
func PositionMs(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldPositionMs, v))
}

// WatchedPct applies equality check predicate on the "watched_pct" field. It's identical to WatchedPctEQ.
func WatchedPct(v float64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldWatchedPct, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// ChapterIDEQ applies the EQ predicate on the "chapter_id" field.
func ChapterIDEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldChapterID, v))
}

// ChapterIDNEQ applies the NEQ predicate on the "chapter_id" field.
func ChapterIDNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldChapterID, v))
}

// ChapterIDIn applies the In predicate on the "chapter_id" field.
func ChapterIDIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldChapterID, vs...))
}

// ChapterIDNotIn applies the NotIn predicate on the "chapter_id" field.
func ChapterIDNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldChapterID, vs...))
}

// ChapterIDGT applies the GT predicate on the "chapter_id" field.
func ChapterIDGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldChapterID, v))
}

// ChapterIDGTE applies the GTE predicate on the "chapter_id" field.
func ChapterIDGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldChapterID, v))
}

// ChapterIDLT applies the LT predicate on the "chapter_id" field.
func ChapterIDLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldChapterID, v))
}

// ChapterIDLTE applies the LTE predicate on the "chapter_id" field.
func ChapterIDLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldChapterID, v))
}

// ChapterIDContains applies the Contains predicate on the "chapter_id" field.
func ChapterIDContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldChapterID, v))
}

// ChapterIDHasPrefix applies the HasPrefix predicate on the "chapter_id" field.
func ChapterIDHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldChapterID, v))
}

// ChapterIDHasSuffix applies the HasSuffix predicate on the "chapter_id" field.
func ChapterIDHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldChapterID, v))
}

// ChapterIDEqualFold applies the EqualFold predicate on the "chapter_id" field.
func ChapterIDEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldChapterID, v))
}

// ChapterIDContainsFold applies the ContainsFold predicate on the "chapter_id" field.
func ChapterIDContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldChapterID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldAction, v))
}

// PositionMsEQ applies the EQ predicate on the "position_ms" field.
func PositionMsEQ(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldPositionMs, v))
}

// PositionMsNEQ applies the NEQ predicate on the "position_ms" field.
func PositionMsNEQ(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldPositionMs, v))
}

// PositionMsIn applies the In predicate on the "position_ms" field.
func PositionMsIn(vs ...int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldPositionMs, vs...))
}

// PositionMsNotIn applies the NotIn predicate on the "position_ms" field.
func PositionMsNotIn(vs ...int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldPositionMs, vs...))
}

// PositionMsGT applies the GT predicate on the "position_ms" field.
func PositionMsGT(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldPositionMs, v))
}

// PositionMsGTE applies the GTE predicate on the "position_ms" field.
func PositionMsGTE(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldPositionMs, v))
}

// PositionMsLT applies the LT predicate on the "position_ms" field.
func PositionMsLT(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldPositionMs, v))
}

// PositionMsLTE applies the LTE predicate on the "position_ms" field.
func PositionMsLTE(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldPositionMs, v))
}

// WatchedPctEQ applies the EQ predicate on the "watched_pct" field.
func WatchedPctEQ(v float64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldWatchedPct, v))
}

// WatchedPctNEQ applies the NEQ predicate on the "watched_pct" field.
func WatchedPctNEQ(v float64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldWatchedPct, v))
}

// WatchedPctIn applies the In predicate on the "watched_pct" field.
func WatchedPctIn(vs ...float64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldWatchedPct, vs...))
}

// WatchedPctNotIn applies the NotIn predicate on the "watched_pct" field.
func WatchedPctNotIn(vs ...float64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldWatchedPct, vs...))
}

// WatchedPctGT applies the GT predicate on the "watched_pct" field.
func WatchedPctGT(v float64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldWatchedPct, v))
}

// WatchedPctGTE applies the GTE predicate on the "watched_pct" field.
func WatchedPctGTE(v float64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldWatchedPct, v))
}

// WatchedPctLT applies the LT predicate on the "watched_pct" field.
func WatchedPctLT(v float64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldWatchedPct, v))
}

// WatchedPctLTE applies the LTE predicate on the "watched_pct" field.
func WatchedPctLTE(v float64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldWatchedPct, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonEvent) predicate.LessonEvent {
	return predicate.LessonEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonEvent) predicate.LessonEvent {
	return predicate.LessonEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonEvent) predicate.LessonEvent {
	return predicate.LessonEvent(sql.NotPredicates(p))
}
