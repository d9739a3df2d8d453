// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anirudh/studyloop/ent/answerevent"
	"github.com/anirudh/studyloop/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdate) SetQuestionType(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerEventUpdate) SetTopic(v string) *AnswerEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTopic(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdate) SetDifficulty(v string) *AnswerEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficulty(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdate) SetPrompt(v string) *AnswerEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePrompt(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AnswerEventUpdate) SetCorrectAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrectAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AnswerEventUpdate) SetGivenAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableGivenAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *AnswerEventUpdate) SetTimedOut(v bool) *AnswerEventUpdate {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimedOut(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetFlagged sets the "flagged" field.
func (_u *AnswerEventUpdate) SetFlagged(v bool) *AnswerEventUpdate {
	_u.mutation.SetFlagged(v)
	return _u
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableFlagged(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetFlagged(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(answerevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(answerevent.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(answerevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Flagged(); ok {
		_spec.SetField(answerevent.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdateOne) SetQuestionType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerEventUpdateOne) SetTopic(v string) *AnswerEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTopic(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdateOne) SetDifficulty(v string) *AnswerEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficulty(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdateOne) SetPrompt(v string) *AnswerEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePrompt(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AnswerEventUpdateOne) SetCorrectAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrectAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AnswerEventUpdateOne) SetGivenAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableGivenAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *AnswerEventUpdateOne) SetTimedOut(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimedOut(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetFlagged sets the "flagged" field.
func (_u *AnswerEventUpdateOne) SetFlagged(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetFlagged(v)
	return _u
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableFlagged(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetFlagged(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(answerevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(answerevent.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(answerevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Flagged(); ok {
		_spec.SetField(answerevent.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
