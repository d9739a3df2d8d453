// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anirudh/studyloop/ent/practiceevent"
)

// PracticeEventCreate is the builder for creating a PracticeEvent entity.
type PracticeEventCreate struct {
	config
	mutation *PracticeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PracticeEventCreate) SetSequence(v int64) *PracticeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeEventCreate) SetTimestamp(v time.Time) *PracticeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableTimestamp(v *time.Time) *PracticeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PracticeEventCreate) SetSessionID(v string) *PracticeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *PracticeEventCreate) SetQuestionID(v string) *PracticeEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *PracticeEventCreate) SetTopic(v string) *PracticeEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableTopic(v *string) *PracticeEventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *PracticeEventCreate) SetCorrect(v bool) *PracticeEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetHintUsed sets the "hint_used" field.
func (_c *PracticeEventCreate) SetHintUsed(v bool) *PracticeEventCreate {
	_c.mutation.SetHintUsed(v)
	return _c
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableHintUsed(v *bool) *PracticeEventCreate {
	if v != nil {
		_c.SetHintUsed(*v)
	}
	return _c
}

// SetSolutionShown sets the "solution_shown" field.
func (_c *PracticeEventCreate) SetSolutionShown(v bool) *PracticeEventCreate {
	_c.mutation.SetSolutionShown(v)
	return _c
}

// SetNillableSolutionShown sets the "solution_shown" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableSolutionShown(v *bool) *PracticeEventCreate {
	if v != nil {
		_c.SetSolutionShown(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *PracticeEventCreate) SetAttempts(v int) *PracticeEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableAttempts(v *int) *PracticeEventCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *PracticeEventCreate) SetTimeMs(v int) *PracticeEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetLoadLevel sets the "load_level" field.
func (_c *PracticeEventCreate) SetLoadLevel(v string) *PracticeEventCreate {
	_c.mutation.SetLoadLevel(v)
	return _c
}

// SetNillableLoadLevel sets the "load_level" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableLoadLevel(v *string) *PracticeEventCreate {
	if v != nil {
		_c.SetLoadLevel(*v)
	}
	return _c
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_c *PracticeEventCreate) Mutation() *PracticeEventMutation {
	return _c.mutation
}

// Save creates the PracticeEvent in the database.
func (_c *PracticeEventCreate) Save(ctx context.Context) (*PracticeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeEventCreate) SaveX(ctx context.Context) *PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practiceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := practiceevent.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		v := practiceevent.DefaultHintUsed
		_c.mutation.SetHintUsed(v)
	}
	if _, ok := _c.mutation.SolutionShown(); !ok {
		v := practiceevent.DefaultSolutionShown
		_c.mutation.SetSolutionShown(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := practiceevent.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.LoadLevel(); !ok {
		v := practiceevent.DefaultLoadLevel
		_c.mutation.SetLoadLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PracticeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "PracticeEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := practiceevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PracticeEvent.topic"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "PracticeEvent.correct"`)}
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		return &ValidationError{Name: "hint_used", err: errors.New(`ent: missing required field "PracticeEvent.hint_used"`)}
	}
	if _, ok := _c.mutation.SolutionShown(); !ok {
		return &ValidationError{Name: "solution_shown", err: errors.New(`ent: missing required field "PracticeEvent.solution_shown"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "PracticeEvent.attempts"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "PracticeEvent.time_ms"`)}
	}
	if _, ok := _c.mutation.LoadLevel(); !ok {
		return &ValidationError{Name: "load_level", err: errors.New(`ent: missing required field "PracticeEvent.load_level"`)}
	}
	return nil
}

func (_c *PracticeEventCreate) sqlSave(ctx context.Context) (*PracticeEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeEventCreate) createSpec() (*PracticeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceevent.Table, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(practiceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practiceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(practiceevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(practiceevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(practiceevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.HintUsed(); ok {
		_spec.SetField(practiceevent.FieldHintUsed, field.TypeBool, value)
		_node.HintUsed = value
	}
	if value, ok := _c.mutation.SolutionShown(); ok {
		_spec.SetField(practiceevent.FieldSolutionShown, field.TypeBool, value)
		_node.SolutionShown = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(practiceevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(practiceevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	if value, ok := _c.mutation.LoadLevel(); ok {
		_spec.SetField(practiceevent.FieldLoadLevel, field.TypeString, value)
		_node.LoadLevel = value
	}
	return _node, _spec
}

// PracticeEventCreateBulk is the builder for creating many PracticeEvent entities in bulk.
type PracticeEventCreateBulk struct {
	config
	err      error
	builders []*PracticeEventCreate
}

// Save creates the PracticeEvent entities in the database.
func (_c *PracticeEventCreateBulk) Save(ctx context.Context) ([]*PracticeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PracticeEventCreateBulk) SaveX(ctx context.Context) []*PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
