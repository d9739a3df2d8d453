// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anirudh/studyloop/ent/lessonevent"
	"github.com/anirudh/studyloop/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonEventUpdate) SetLessonID(v string) *LessonEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableLessonID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *LessonEventUpdate) SetChapterID(v string) *LessonEventUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableChapterID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *LessonEventUpdate) SetAction(v string) *LessonEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableAction(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPositionMs sets the "position_ms" field.
func (_u *LessonEventUpdate) SetPositionMs(v int64) *LessonEventUpdate {
	_u.mutation.ResetPositionMs()
	_u.mutation.SetPositionMs(v)
	return _u
}

// SetNillablePositionMs sets the "position_ms" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillablePositionMs(v *int64) *LessonEventUpdate {
	if v != nil {
		_u.SetPositionMs(*v)
	}
	return _u
}

// AddPositionMs adds value to the "position_ms" field.
func (_u *LessonEventUpdate) AddPositionMs(v int64) *LessonEventUpdate {
	_u.mutation.AddPositionMs(v)
	return _u
}

// SetWatchedPct sets the "watched_pct" field.
func (_u *LessonEventUpdate) SetWatchedPct(v float64) *LessonEventUpdate {
	_u.mutation.ResetWatchedPct()
	_u.mutation.SetWatchedPct(v)
	return _u
}

// SetNillableWatchedPct sets the "watched_pct" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableWatchedPct(v *float64) *LessonEventUpdate {
	if v != nil {
		_u.SetWatchedPct(*v)
	}
	return _u
}

// AddWatchedPct adds value to the "watched_pct" field.
func (_u *LessonEventUpdate) AddWatchedPct(v float64) *LessonEventUpdate {
	_u.mutation.AddWatchedPct(v)
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdate) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdate) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := lessonevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterID(); ok {
		_spec.SetField(lessonevent.FieldChapterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(lessonevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PositionMs(); ok {
		_spec.SetField(lessonevent.FieldPositionMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPositionMs(); ok {
		_spec.AddField(lessonevent.FieldPositionMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WatchedPct(); ok {
		_spec.SetField(lessonevent.FieldWatchedPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWatchedPct(); ok {
		_spec.AddField(lessonevent.FieldWatchedPct, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonEventUpdateOne) SetLessonID(v string) *LessonEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableLessonID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *LessonEventUpdateOne) SetChapterID(v string) *LessonEventUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableChapterID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *LessonEventUpdateOne) SetAction(v string) *LessonEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableAction(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPositionMs sets the "position_ms" field.
func (_u *LessonEventUpdateOne) SetPositionMs(v int64) *LessonEventUpdateOne {
	_u.mutation.ResetPositionMs()
	_u.mutation.SetPositionMs(v)
	return _u
}

// SetNillablePositionMs sets the "position_ms" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillablePositionMs(v *int64) *LessonEventUpdateOne {
	if v != nil {
		_u.SetPositionMs(*v)
	}
	return _u
}

// AddPositionMs adds value to the "position_ms" field.
func (_u *LessonEventUpdateOne) AddPositionMs(v int64) *LessonEventUpdateOne {
	_u.mutation.AddPositionMs(v)
	return _u
}

// SetWatchedPct sets the "watched_pct" field.
func (_u *LessonEventUpdateOne) SetWatchedPct(v float64) *LessonEventUpdateOne {
	_u.mutation.ResetWatchedPct()
	_u.mutation.SetWatchedPct(v)
	return _u
}

// SetNillableWatchedPct sets the "watched_pct" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableWatchedPct(v *float64) *LessonEventUpdateOne {
	if v != nil {
		_u.SetWatchedPct(*v)
	}
	return _u
}

// AddWatchedPct adds value to the "watched_pct" field.
func (_u *LessonEventUpdateOne) AddWatchedPct(v float64) *LessonEventUpdateOne {
	_u.mutation.AddWatchedPct(v)
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonEvent entity.
func (_u *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdateOne) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := lessonevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
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
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterID(); ok {
		_spec.SetField(lessonevent.FieldChapterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(lessonevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PositionMs(); ok {
		_spec.SetField(lessonevent.FieldPositionMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPositionMs(); ok {
		_spec.AddField(lessonevent.FieldPositionMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WatchedPct(); ok {
		_spec.SetField(lessonevent.FieldWatchedPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWatchedPct(); ok {
		_spec.AddField(lessonevent.FieldWatchedPct, field.TypeFloat64, value)
	}
	_node = &LessonEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
