// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"viteroad/ent/practiceevent"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
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

// SetVisitID sets the "visit_id" field.
func (_c *PracticeEventCreate) SetVisitID(v string) *PracticeEventCreate {
	_c.mutation.SetVisitID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *PracticeEventCreate) SetLessonID(v string) *PracticeEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetChallengeTitle sets the "challenge_title" field.
func (_c *PracticeEventCreate) SetChallengeTitle(v string) *PracticeEventCreate {
	_c.mutation.SetChallengeTitle(v)
	return _c
}

// SetChallengeType sets the "challenge_type" field.
func (_c *PracticeEventCreate) SetChallengeType(v string) *PracticeEventCreate {
	_c.mutation.SetChallengeType(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PracticeEventCreate) SetAction(v string) *PracticeEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetEdits sets the "edits" field.
func (_c *PracticeEventCreate) SetEdits(v int) *PracticeEventCreate {
	_c.mutation.SetEdits(v)
	return _c
}

// SetNillableEdits sets the "edits" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableEdits(v *int) *PracticeEventCreate {
	if v != nil {
		_c.SetEdits(*v)
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
	if _, ok := _c.mutation.Edits(); !ok {
		v := practiceevent.DefaultEdits
		_c.mutation.SetEdits(v)
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
	if _, ok := _c.mutation.VisitID(); !ok {
		return &ValidationError{Name: "visit_id", err: errors.New(`ent: missing required field "PracticeEvent.visit_id"`)}
	}
	if v, ok := _c.mutation.VisitID(); ok {
		if err := practiceevent.VisitIDValidator(v); err != nil {
			return &ValidationError{Name: "visit_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.visit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "PracticeEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := practiceevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeTitle(); !ok {
		return &ValidationError{Name: "challenge_title", err: errors.New(`ent: missing required field "PracticeEvent.challenge_title"`)}
	}
	if v, ok := _c.mutation.ChallengeTitle(); ok {
		if err := practiceevent.ChallengeTitleValidator(v); err != nil {
			return &ValidationError{Name: "challenge_title", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.challenge_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeType(); !ok {
		return &ValidationError{Name: "challenge_type", err: errors.New(`ent: missing required field "PracticeEvent.challenge_type"`)}
	}
	if v, ok := _c.mutation.ChallengeType(); ok {
		if err := practiceevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.challenge_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PracticeEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := practiceevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Edits(); !ok {
		return &ValidationError{Name: "edits", err: errors.New(`ent: missing required field "PracticeEvent.edits"`)}
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
	if value, ok := _c.mutation.VisitID(); ok {
		_spec.SetField(practiceevent.FieldVisitID, field.TypeString, value)
		_node.VisitID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(practiceevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.ChallengeTitle(); ok {
		_spec.SetField(practiceevent.FieldChallengeTitle, field.TypeString, value)
		_node.ChallengeTitle = value
	}
	if value, ok := _c.mutation.ChallengeType(); ok {
		_spec.SetField(practiceevent.FieldChallengeType, field.TypeString, value)
		_node.ChallengeType = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(practiceevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Edits(); ok {
		_spec.SetField(practiceevent.FieldEdits, field.TypeInt, value)
		_node.Edits = value
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
