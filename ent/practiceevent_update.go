// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"viteroad/ent/practiceevent"
	"viteroad/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
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

// SetVisitID sets the "visit_id" field.
func (_u *PracticeEventUpdate) SetVisitID(v string) *PracticeEventUpdate {
	_u.mutation.SetVisitID(v)
	return _u
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableVisitID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetVisitID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PracticeEventUpdate) SetLessonID(v string) *PracticeEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableLessonID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetChallengeTitle sets the "challenge_title" field.
func (_u *PracticeEventUpdate) SetChallengeTitle(v string) *PracticeEventUpdate {
	_u.mutation.SetChallengeTitle(v)
	return _u
}

// SetNillableChallengeTitle sets the "challenge_title" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableChallengeTitle(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetChallengeTitle(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *PracticeEventUpdate) SetChallengeType(v string) *PracticeEventUpdate {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableChallengeType(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PracticeEventUpdate) SetAction(v string) *PracticeEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableAction(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetEdits sets the "edits" field.
func (_u *PracticeEventUpdate) SetEdits(v int) *PracticeEventUpdate {
	_u.mutation.ResetEdits()
	_u.mutation.SetEdits(v)
	return _u
}

// SetNillableEdits sets the "edits" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableEdits(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetEdits(*v)
	}
	return _u
}

// AddEdits adds value to the "edits" field.
func (_u *PracticeEventUpdate) AddEdits(v int) *PracticeEventUpdate {
	_u.mutation.AddEdits(v)
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
	if v, ok := _u.mutation.VisitID(); ok {
		if err := practiceevent.VisitIDValidator(v); err != nil {
			return &ValidationError{Name: "visit_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.visit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := practiceevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeTitle(); ok {
		if err := practiceevent.ChallengeTitleValidator(v); err != nil {
			return &ValidationError{Name: "challenge_title", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.challenge_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := practiceevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := practiceevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.action": %w`, err)}
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
	if value, ok := _u.mutation.VisitID(); ok {
		_spec.SetField(practiceevent.FieldVisitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(practiceevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeTitle(); ok {
		_spec.SetField(practiceevent.FieldChallengeTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(practiceevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(practiceevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Edits(); ok {
		_spec.SetField(practiceevent.FieldEdits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEdits(); ok {
		_spec.AddField(practiceevent.FieldEdits, field.TypeInt, value)
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

// SetVisitID sets the "visit_id" field.
func (_u *PracticeEventUpdateOne) SetVisitID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetVisitID(v)
	return _u
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableVisitID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetVisitID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PracticeEventUpdateOne) SetLessonID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableLessonID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetChallengeTitle sets the "challenge_title" field.
func (_u *PracticeEventUpdateOne) SetChallengeTitle(v string) *PracticeEventUpdateOne {
	_u.mutation.SetChallengeTitle(v)
	return _u
}

// SetNillableChallengeTitle sets the "challenge_title" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableChallengeTitle(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetChallengeTitle(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *PracticeEventUpdateOne) SetChallengeType(v string) *PracticeEventUpdateOne {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableChallengeType(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PracticeEventUpdateOne) SetAction(v string) *PracticeEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableAction(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetEdits sets the "edits" field.
func (_u *PracticeEventUpdateOne) SetEdits(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetEdits()
	_u.mutation.SetEdits(v)
	return _u
}

// SetNillableEdits sets the "edits" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableEdits(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetEdits(*v)
	}
	return _u
}

// AddEdits adds value to the "edits" field.
func (_u *PracticeEventUpdateOne) AddEdits(v int) *PracticeEventUpdateOne {
	_u.mutation.AddEdits(v)
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
	if v, ok := _u.mutation.VisitID(); ok {
		if err := practiceevent.VisitIDValidator(v); err != nil {
			return &ValidationError{Name: "visit_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.visit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := practiceevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeTitle(); ok {
		if err := practiceevent.ChallengeTitleValidator(v); err != nil {
			return &ValidationError{Name: "challenge_title", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.challenge_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := practiceevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := practiceevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.action": %w`, err)}
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
	if value, ok := _u.mutation.VisitID(); ok {
		_spec.SetField(practiceevent.FieldVisitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(practiceevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeTitle(); ok {
		_spec.SetField(practiceevent.FieldChallengeTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(practiceevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(practiceevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Edits(); ok {
		_spec.SetField(practiceevent.FieldEdits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEdits(); ok {
		_spec.AddField(practiceevent.FieldEdits, field.TypeInt, value)
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
