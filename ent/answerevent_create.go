// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anirudh/studyloop/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerEventCreate) SetSessionID(v string) *AnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerEventCreate) SetQuestionID(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *AnswerEventCreate) SetQuestionType(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AnswerEventCreate) SetTopic(v string) *AnswerEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AnswerEventCreate) SetDifficulty(v string) *AnswerEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *AnswerEventCreate) SetPrompt(v string) *AnswerEventCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *AnswerEventCreate) SetCorrectAnswer(v string) *AnswerEventCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableCorrectAnswer(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetGivenAnswer sets the "given_answer" field.
func (_c *AnswerEventCreate) SetGivenAnswer(v string) *AnswerEventCreate {
	_c.mutation.SetGivenAnswer(v)
	return _c
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableGivenAnswer(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetGivenAnswer(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerEventCreate) SetCorrect(v bool) *AnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimedOut sets the "timed_out" field.
func (_c *AnswerEventCreate) SetTimedOut(v bool) *AnswerEventCreate {
	_c.mutation.SetTimedOut(v)
	return _c
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimedOut(v *bool) *AnswerEventCreate {
	if v != nil {
		_c.SetTimedOut(*v)
	}
	return _c
}

// SetFlagged sets the "flagged" field.
func (_c *AnswerEventCreate) SetFlagged(v bool) *AnswerEventCreate {
	_c.mutation.SetFlagged(v)
	return _c
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableFlagged(v *bool) *AnswerEventCreate {
	if v != nil {
		_c.SetFlagged(*v)
	}
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *AnswerEventCreate) SetTimeMs(v int) *AnswerEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		v := answerevent.DefaultCorrectAnswer
		_c.mutation.SetCorrectAnswer(v)
	}
	if _, ok := _c.mutation.GivenAnswer(); !ok {
		v := answerevent.DefaultGivenAnswer
		_c.mutation.SetGivenAnswer(v)
	}
	if _, ok := _c.mutation.TimedOut(); !ok {
		v := answerevent.DefaultTimedOut
		_c.mutation.SetTimedOut(v)
	}
	if _, ok := _c.mutation.Flagged(); !ok {
		v := answerevent.DefaultFlagged
		_c.mutation.SetFlagged(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "AnswerEvent.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "AnswerEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AnswerEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "AnswerEvent.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "AnswerEvent.correct_answer"`)}
	}
	if _, ok := _c.mutation.GivenAnswer(); !ok {
		return &ValidationError{Name: "given_answer", err: errors.New(`ent: missing required field "AnswerEvent.given_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimedOut(); !ok {
		return &ValidationError{Name: "timed_out", err: errors.New(`ent: missing required field "AnswerEvent.timed_out"`)}
	}
	if _, ok := _c.mutation.Flagged(); !ok {
		return &ValidationError{Name: "flagged", err: errors.New(`ent: missing required field "AnswerEvent.flagged"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AnswerEvent.time_ms"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
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

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(answerevent.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.GivenAnswer(); ok {
		_spec.SetField(answerevent.FieldGivenAnswer, field.TypeString, value)
		_node.GivenAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimedOut(); ok {
		_spec.SetField(answerevent.FieldTimedOut, field.TypeBool, value)
		_node.TimedOut = value
	}
	if value, ok := _c.mutation.Flagged(); ok {
		_spec.SetField(answerevent.FieldFlagged, field.TypeBool, value)
		_node.Flagged = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
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
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
