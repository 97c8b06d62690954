// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/cyberquest/ent/predicate"
	"github.com/asengupta/cyberquest/ent/taskcompletion"
)

// TaskCompletionDelete is the builder for deleting a TaskCompletion entity.
type TaskCompletionDelete struct {
	config
	hooks    []Hook
	mutation *TaskCompletionMutation
}

// Where appends a list predicates to the TaskCompletionDelete builder.
func (_d *TaskCompletionDelete) Where(ps ...predicate.TaskCompletion) *TaskCompletionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TaskCompletionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaskCompletionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TaskCompletionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(taskcompletion.Table, sqlgraph.NewFieldSpec(taskcompletion.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TaskCompletionDeleteOne is the builder for deleting a single TaskCompletion entity.
type TaskCompletionDeleteOne struct {
	_d *TaskCompletionDelete
}

// Where appends a list predicates to the TaskCompletionDelete builder.
func (_d *TaskCompletionDeleteOne) Where(ps ...predicate.TaskCompletion) *TaskCompletionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TaskCompletionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{taskcompletion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaskCompletionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
