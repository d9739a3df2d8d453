// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anirudh/studyloop/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionEventCreate) SetSequence(v int64) *SessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *SessionEventCreate) SetQuestionCount(v int) *SessionEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableQuestionCount(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *SessionEventCreate) SetAnswered(v int) *SessionEventCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableAnswered(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetAnswered(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *SessionEventCreate) SetCorrect(v int) *SessionEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableCorrect(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetTimedOut sets the "timed_out" field.
func (_c *SessionEventCreate) SetTimedOut(v int) *SessionEventCreate {
	_c.mutation.SetTimedOut(v)
	return _c
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimedOut(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetTimedOut(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *SessionEventCreate) SetScore(v int) *SessionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableScore(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *SessionEventCreate) SetMaxScore(v int) *SessionEventCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableMaxScore(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetMaxScore(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *SessionEventCreate) SetDurationSecs(v int) *SessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDurationSecs(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetFinalLevel sets the "final_level" field.
func (_c *SessionEventCreate) SetFinalLevel(v string) *SessionEventCreate {
	_c.mutation.SetFinalLevel(v)
	return _c
}

// SetNillableFinalLevel sets the "final_level" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableFinalLevel(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetFinalLevel(*v)
	}
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := sessionevent.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.Answered(); !ok {
		v := sessionevent.DefaultAnswered
		_c.mutation.SetAnswered(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := sessionevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.TimedOut(); !ok {
		v := sessionevent.DefaultTimedOut
		_c.mutation.SetTimedOut(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := sessionevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		v := sessionevent.DefaultMaxScore
		_c.mutation.SetMaxScore(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := sessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.FinalLevel(); !ok {
		v := sessionevent.DefaultFinalLevel
		_c.mutation.SetFinalLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "SessionEvent.question_count"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "SessionEvent.answered"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SessionEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimedOut(); !ok {
		return &ValidationError{Name: "timed_out", err: errors.New(`ent: missing required field "SessionEvent.timed_out"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SessionEvent.score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "SessionEvent.max_score"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "SessionEvent.duration_secs"`)}
	}
	if _, ok := _c.mutation.FinalLevel(); !ok {
		return &ValidationError{Name: "final_level", err: errors.New(`ent: missing required field "SessionEvent.final_level"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
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

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(sessionevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(sessionevent.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(sessionevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimedOut(); ok {
		_spec.SetField(sessionevent.FieldTimedOut, field.TypeInt, value)
		_node.TimedOut = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(sessionevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(sessionevent.FieldMaxScore, field.TypeInt, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.FinalLevel(); ok {
		_spec.SetField(sessionevent.FieldFinalLevel, field.TypeString, value)
		_node.FinalLevel = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
