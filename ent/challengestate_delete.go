// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/cyberquest/ent/challengestate"
	"github.com/asengupta/cyberquest/ent/predicate"
)

// ChallengeStateDelete is the builder for deleting a ChallengeState entity.
type ChallengeStateDelete struct {
	config
	hooks    []Hook
	mutation *ChallengeStateMutation
}

// Where appends a list predicates to the ChallengeStateDelete builder.
func (_d *ChallengeStateDelete) Where(ps ...predicate.ChallengeState) *ChallengeStateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChallengeStateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChallengeStateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChallengeStateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(challengestate.Table, sqlgraph.NewFieldSpec(challengestate.FieldID, field.TypeInt))
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

// ChallengeStateDeleteOne is the builder for deleting a single ChallengeState entity.
type ChallengeStateDeleteOne struct {
	_d *ChallengeStateDelete
}

// Where appends a list predicates to the ChallengeStateDelete builder.
func (_d *ChallengeStateDeleteOne) Where(ps ...predicate.ChallengeState) *ChallengeStateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChallengeStateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{challengestate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChallengeStateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
