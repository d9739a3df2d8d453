// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anirudh/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTopic, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldCorrect, v))
}

// HintUsed applies equality check predicate on the "hint_used" field. It's identical to HintUsedEQ.
func HintUsed(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldHintUsed, v))
}

// SolutionShown applies equality check predicate on the "solution_shown" field. It's identical to SolutionShownEQ.
func SolutionShown(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSolutionShown, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldAttempts, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimeMs, v))
}

// LoadLevel applies equality check predicate on the "load_level" field. It's identical to LoadLevelEQ.
func LoadLevel(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldLoadLevel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldTopic, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldCorrect, v))
}

// HintUsedEQ applies the EQ predicate on the "hint_used" field.
func HintUsedEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldHintUsed, v))
}

// HintUsedNEQ applies the NEQ predicate on the "hint_used" field.
func HintUsedNEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldHintUsed, v))
}

// SolutionShownEQ applies the EQ predicate on the "solution_shown" field.
func SolutionShownEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSolutionShown, v))
}

// SolutionShownNEQ applies the NEQ predicate on the "solution_shown" field.
func SolutionShownNEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSolutionShown, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldAttempts, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldTimeMs, v))
}

// LoadLevelEQ applies the EQ predicate on the "load_level" field.
func LoadLevelEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldLoadLevel, v))
}

// LoadLevelNEQ applies the NEQ predicate on the "load_level" field.
func LoadLevelNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldLoadLevel, v))
}

// LoadLevelIn applies the In predicate on the "load_level" field.
func LoadLevelIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldLoadLevel, vs...))
}

// LoadLevelNotIn applies the NotIn predicate on the "load_level" field.
func LoadLevelNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldLoadLevel, vs...))
}

// LoadLevelGT applies the GT predicate on the "load_level" field.
func LoadLevelGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldLoadLevel, v))
}

// LoadLevelGTE applies the GTE predicate on the "load_level" field.
func LoadLevelGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldLoadLevel, v))
}

// LoadLevelLT applies the LT predicate on the "load_level" field.
func LoadLevelLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldLoadLevel, v))
}

// LoadLevelLTE applies the LTE predicate on the "load_level" field.
func LoadLevelLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldLoadLevel, v))
}

// LoadLevelContains applies the Contains predicate on the "load_level" field.
func LoadLevelContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldLoadLevel, v))
}

// LoadLevelHasPrefix applies the HasPrefix predicate on the "load_level" field.
func LoadLevelHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldLoadLevel, v))
}

// LoadLevelHasSuffix applies the HasSuffix predicate on the "load_level" field.
func LoadLevelHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldLoadLevel, v))
}

// LoadLevelEqualFold applies the EqualFold predicate on the "load_level" field.
func LoadLevelEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldLoadLevel, v))
}

// LoadLevelContainsFold applies the ContainsFold predicate on the "load_level" field.
func LoadLevelContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldLoadLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.NotPredicates(p))
}
