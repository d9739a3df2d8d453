// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anirudh/studyloop/ent/practiceevent"
	"github.com/anirudh/studyloop/ent/predicate"
)

// PracticeEventUpdate is the builder for updating PracticeEvent entities.
type PracticeEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeEventMutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdate) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdate) SetSessionID(v string) *PracticeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSessionID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *PracticeEventUpdate) SetQuestionID(v string) *PracticeEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableQuestionID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PracticeEventUpdate) SetTopic(v string) *PracticeEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableTopic(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeEventUpdate) SetCorrect(v bool) *PracticeEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableCorrect(v *bool) *PracticeEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *PracticeEventUpdate) SetHintUsed(v bool) *PracticeEventUpdate {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableHintUsed(v *bool) *PracticeEventUpdate {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetSolutionShown sets the "solution_shown" field.
func (_u *PracticeEventUpdate) SetSolutionShown(v bool) *PracticeEventUpdate {
	_u.mutation.SetSolutionShown(v)
	return _u
}

// SetNillableSolutionShown sets the "solution_shown" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSolutionShown(v *bool) *PracticeEventUpdate {
	if v != nil {
		_u.SetSolutionShown(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *PracticeEventUpdate) SetAttempts(v int) *PracticeEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableAttempts(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *PracticeEventUpdate) AddAttempts(v int) *PracticeEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *PracticeEventUpdate) SetTimeMs(v int) *PracticeEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableTimeMs(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *PracticeEventUpdate) AddTimeMs(v int) *PracticeEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetLoadLevel sets the "load_level" field.
func (_u *PracticeEventUpdate) SetLoadLevel(v string) *PracticeEventUpdate {
	_u.mutation.SetLoadLevel(v)
	return _u
}

// SetNillableLoadLevel sets the "load_level" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableLoadLevel(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetLoadLevel(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdate) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := practiceevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(practiceevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(practiceevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practiceevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(practiceevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SolutionShown(); ok {
		_spec.SetField(practiceevent.FieldSolutionShown, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(practiceevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(practiceevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(practiceevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(practiceevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LoadLevel(); ok {
		_spec.SetField(practiceevent.FieldLoadLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeEventUpdateOne is the builder for updating a single PracticeEvent entity.
type PracticeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdateOne) SetSessionID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSessionID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *PracticeEventUpdateOne) SetQuestionID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableQuestionID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PracticeEventUpdateOne) SetTopic(v string) *PracticeEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableTopic(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeEventUpdateOne) SetCorrect(v bool) *PracticeEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableCorrect(v *bool) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *PracticeEventUpdateOne) SetHintUsed(v bool) *PracticeEventUpdateOne {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableHintUsed(v *bool) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetSolutionShown sets the "solution_shown" field.
func (_u *PracticeEventUpdateOne) SetSolutionShown(v bool) *PracticeEventUpdateOne {
	_u.mutation.SetSolutionShown(v)
	return _u
}

// SetNillableSolutionShown sets the "solution_shown" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSolutionShown(v *bool) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSolutionShown(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *PracticeEventUpdateOne) SetAttempts(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableAttempts(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *PracticeEventUpdateOne) AddAttempts(v int) *PracticeEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *PracticeEventUpdateOne) SetTimeMs(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableTimeMs(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *PracticeEventUpdateOne) AddTimeMs(v int) *PracticeEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetLoadLevel sets the "load_level" field.
func (_u *PracticeEventUpdateOne) SetLoadLevel(v string) *PracticeEventUpdateOne {
	_u.mutation.SetLoadLevel(v)
	return _u
}

// SetNillableLoadLevel sets the "load_level" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableLoadLevel(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetLoadLevel(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdateOne) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdateOne) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeEventUpdateOne) Select(field string, fields ...string) *PracticeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeEvent entity.
func (_u *PracticeEventUpdateOne) Save(ctx context.Context) (*PracticeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) SaveX(ctx context.Context) *PracticeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := practiceevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceevent.FieldID)
		for _, f := range fields {
			if !practiceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceevent.FieldID {
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
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(practiceevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(practiceevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practiceevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(practiceevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SolutionShown(); ok {
		_spec.SetField(practiceevent.FieldSolutionShown, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(practiceevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(practiceevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(practiceevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(practiceevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LoadLevel(); ok {
		_spec.SetField(practiceevent.FieldLoadLevel, field.TypeString, value)
	}
	_node = &PracticeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
