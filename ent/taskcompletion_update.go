// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/cyberquest/ent/predicate"
	"github.com/asengupta/cyberquest/ent/taskcompletion"
)

// TaskCompletionUpdate is the builder for updating TaskCompletion entities.
type TaskCompletionUpdate struct {
	config
	hooks    []Hook
	mutation *TaskCompletionMutation
}

// Where appends a list predicates to the TaskCompletionUpdate builder.
func (_u *TaskCompletionUpdate) Where(ps ...predicate.TaskCompletion) *TaskCompletionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskCompletionUpdate) SetUserID(v string) *TaskCompletionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskCompletionUpdate) SetNillableUserID(v *string) *TaskCompletionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TaskCompletionUpdate) SetCategory(v string) *TaskCompletionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TaskCompletionUpdate) SetNillableCategory(v *string) *TaskCompletionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskCompletionUpdate) SetTaskID(v string) *TaskCompletionUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskCompletionUpdate) SetNillableTaskID(v *string) *TaskCompletionUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *TaskCompletionUpdate) SetXpReward(v int) *TaskCompletionUpdate {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *TaskCompletionUpdate) SetNillableXpReward(v *int) *TaskCompletionUpdate {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *TaskCompletionUpdate) AddXpReward(v int) *TaskCompletionUpdate {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskCompletionUpdate) SetCompletedAt(v time.Time) *TaskCompletionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskCompletionUpdate) SetNillableCompletedAt(v *time.Time) *TaskCompletionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the TaskCompletionMutation object of the builder.
func (_u *TaskCompletionUpdate) Mutation() *TaskCompletionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskCompletionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskCompletionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskCompletionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskCompletionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskCompletionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := taskcompletion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := taskcompletion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := taskcompletion.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpReward(); ok {
		if err := taskcompletion.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.xp_reward": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskCompletionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskcompletion.Table, taskcompletion.Columns, sqlgraph.NewFieldSpec(taskcompletion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(taskcompletion.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(taskcompletion.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(taskcompletion.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(taskcompletion.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(taskcompletion.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskcompletion.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskcompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskCompletionUpdateOne is the builder for updating a single TaskCompletion entity.
type TaskCompletionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskCompletionMutation
}

// SetUserID sets the "user_id" field.
func (_u *TaskCompletionUpdateOne) SetUserID(v string) *TaskCompletionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskCompletionUpdateOne) SetNillableUserID(v *string) *TaskCompletionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TaskCompletionUpdateOne) SetCategory(v string) *TaskCompletionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TaskCompletionUpdateOne) SetNillableCategory(v *string) *TaskCompletionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskCompletionUpdateOne) SetTaskID(v string) *TaskCompletionUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskCompletionUpdateOne) SetNillableTaskID(v *string) *TaskCompletionUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *TaskCompletionUpdateOne) SetXpReward(v int) *TaskCompletionUpdateOne {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *TaskCompletionUpdateOne) SetNillableXpReward(v *int) *TaskCompletionUpdateOne {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *TaskCompletionUpdateOne) AddXpReward(v int) *TaskCompletionUpdateOne {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskCompletionUpdateOne) SetCompletedAt(v time.Time) *TaskCompletionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskCompletionUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskCompletionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the TaskCompletionMutation object of the builder.
func (_u *TaskCompletionUpdateOne) Mutation() *TaskCompletionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskCompletionUpdate builder.
func (_u *TaskCompletionUpdateOne) Where(ps ...predicate.TaskCompletion) *TaskCompletionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskCompletionUpdateOne) Select(field string, fields ...string) *TaskCompletionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskCompletion entity.
func (_u *TaskCompletionUpdateOne) Save(ctx context.Context) (*TaskCompletion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskCompletionUpdateOne) SaveX(ctx context.Context) *TaskCompletion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskCompletionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskCompletionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskCompletionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := taskcompletion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := taskcompletion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := taskcompletion.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpReward(); ok {
		if err := taskcompletion.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "TaskCompletion.xp_reward": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskCompletionUpdateOne) sqlSave(ctx context.Context) (_node *TaskCompletion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskcompletion.Table, taskcompletion.Columns, sqlgraph.NewFieldSpec(taskcompletion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskCompletion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskcompletion.FieldID)
		for _, f := range fields {
			if !taskcompletion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskcompletion.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(taskcompletion.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(taskcompletion.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(taskcompletion.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(taskcompletion.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(taskcompletion.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskcompletion.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &TaskCompletion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskcompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
