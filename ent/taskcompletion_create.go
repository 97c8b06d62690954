// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/cyberquest/ent/taskcompletion"
)

// TaskCompletionCreate is the builder for creating a TaskCompletion entity.
type TaskCompletionCreate struct {
	config
	mutation *TaskCompletionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TaskCompletionCreate) SetUserID(v string) *TaskCompletionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *TaskCompletionCreate) SetCategory(v string) *TaskCompletionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TaskCompletionCreate) SetTaskID(v string) *TaskCompletionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetXpReward sets the "xp_reward" field.
func (_c *TaskCompletionCreate) SetXpReward(v int) *TaskCompletionCreate {
	_c.mutation.SetXpReward(v)
	return _c
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_c *TaskCompletionCreate) SetNillableXpReward(v *int) *TaskCompletionCreate {
	if v != nil {
		_c.SetXpReward(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCompletionCreate) SetCompletedAt(v time.Time) *TaskCompletionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCompletionCreate) SetNillableCompletedAt(v *time.Time) *TaskCompletionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the TaskCompletionMutation object of the builder.
func (_c *TaskCompletionCreate) Mutation() *TaskCompletionMutation {
	return _c.mutation
}

// Save creates the TaskCompletion in the database.
func (_c *TaskCompletionCreate) Save(ctx context.Context) (*TaskCompletion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCompletionCreate) SaveX(ctx context.Context) *TaskCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCompletionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCompletionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCompletionCreate) defaults() {
	if _, ok := _c.mutation.XpReward(); !ok {
		v := taskcompletion.DefaultXpReward
		_c.mutation.SetXpReward(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := taskcompletion.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCompletionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TaskCompletion.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := taskcompletion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "TaskCompletion.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := taskcompletion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskCompletion.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := taskcompletion.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpReward(); !ok {
		return &ValidationError{Name: "xp_reward", err: errors.New(`ent: missing required field "TaskCompletion.xp_reward"`)}
	}
	if v, ok := _c.mutation.XpReward(); ok {
		if err := taskcompletion.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.xp_reward": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "TaskCompletion.completed_at"`)}
	}
	return nil
}

func (_c *TaskCompletionCreate) sqlSave(ctx context.Context) (*TaskCompletion, error) {
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

func (_c *TaskCompletionCreate) createSpec() (*TaskCompletion, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskCompletion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskcompletion.Table, sqlgraph.NewFieldSpec(taskcompletion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(taskcompletion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(taskcompletion.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(taskcompletion.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.XpReward(); ok {
		_spec.SetField(taskcompletion.FieldXpReward, field.TypeInt, value)
		_node.XpReward = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskcompletion.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// TaskCompletionCreateBulk is the builder for creating many TaskCompletion entities in bulk.
type TaskCompletionCreateBulk struct {
	config
	err      error
	builders []*TaskCompletionCreate
}

// Save creates the TaskCompletion entities in the database.
func (_c *TaskCompletionCreateBulk) Save(ctx context.Context) ([]*TaskCompletion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskCompletion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskCompletionMutation)
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
func (_c *TaskCompletionCreateBulk) SaveX(ctx context.Context) []*TaskCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCompletionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCompletionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
