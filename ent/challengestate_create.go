// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/cyberquest/ent/challengestate"
)

// ChallengeStateCreate is the builder for creating a ChallengeState entity.
type ChallengeStateCreate struct {
	config
	mutation *ChallengeStateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ChallengeStateCreate) SetUserID(v string) *ChallengeStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *ChallengeStateCreate) SetChallengeID(v string) *ChallengeStateCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ChallengeStateCreate) SetCategory(v string) *ChallengeStateCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetCurrent sets the "current" field.
func (_c *ChallengeStateCreate) SetCurrent(v int) *ChallengeStateCreate {
	_c.mutation.SetCurrent(v)
	return _c
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_c *ChallengeStateCreate) SetNillableCurrent(v *int) *ChallengeStateCreate {
	if v != nil {
		_c.SetCurrent(*v)
	}
	return _c
}

// SetTarget sets the "target" field.
func (_c *ChallengeStateCreate) SetTarget(v int) *ChallengeStateCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetXpReward sets the "xp_reward" field.
func (_c *ChallengeStateCreate) SetXpReward(v int) *ChallengeStateCreate {
	_c.mutation.SetXpReward(v)
	return _c
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_c *ChallengeStateCreate) SetNillableXpReward(v *int) *ChallengeStateCreate {
	if v != nil {
		_c.SetXpReward(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ChallengeStateCreate) SetCompleted(v bool) *ChallengeStateCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ChallengeStateCreate) SetNillableCompleted(v *bool) *ChallengeStateCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetWeekStart sets the "week_start" field.
func (_c *ChallengeStateCreate) SetWeekStart(v time.Time) *ChallengeStateCreate {
	_c.mutation.SetWeekStart(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChallengeStateCreate) SetUpdatedAt(v time.Time) *ChallengeStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChallengeStateCreate) SetNillableUpdatedAt(v *time.Time) *ChallengeStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ChallengeStateMutation object of the builder.
func (_c *ChallengeStateCreate) Mutation() *ChallengeStateMutation {
	return _c.mutation
}

// Save creates the ChallengeState in the database.
func (_c *ChallengeStateCreate) Save(ctx context.Context) (*ChallengeState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeStateCreate) SaveX(ctx context.Context) *ChallengeState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChallengeStateCreate) defaults() {
	if _, ok := _c.mutation.Current(); !ok {
		v := challengestate.DefaultCurrent
		_c.mutation.SetCurrent(v)
	}
	if _, ok := _c.mutation.XpReward(); !ok {
		v := challengestate.DefaultXpReward
		_c.mutation.SetXpReward(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := challengestate.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := challengestate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChallengeState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := challengestate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "ChallengeState.challenge_id"`)}
	}
	if v, ok := _c.mutation.ChallengeID(); ok {
		if err := challengestate.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.challenge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ChallengeState.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := challengestate.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Current(); !ok {
		return &ValidationError{Name: "current", err: errors.New(`ent: missing required field "ChallengeState.current"`)}
	}
	if v, ok := _c.mutation.Current(); ok {
		if err := challengestate.CurrentValidator(v); err != nil {
			return &ValidationError{Name: "current", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.current": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "ChallengeState.target"`)}
	}
	if v, ok := _c.mutation.Target(); ok {
		if err := challengestate.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.target": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpReward(); !ok {
		return &ValidationError{Name: "xp_reward", err: errors.New(`ent: missing required field "ChallengeState.xp_reward"`)}
	}
	if v, ok := _c.mutation.XpReward(); ok {
		if err := challengestate.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.xp_reward": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "ChallengeState.completed"`)}
	}
	if _, ok := _c.mutation.WeekStart(); !ok {
		return &ValidationError{Name: "week_start", err: errors.New(`ent: missing required field "ChallengeState.week_start"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChallengeState.updated_at"`)}
	}
	return nil
}

func (_c *ChallengeStateCreate) sqlSave(ctx context.Context) (*ChallengeState, error) {
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

func (_c *ChallengeStateCreate) createSpec() (*ChallengeState, *sqlgraph.CreateSpec) {
	var (
		_node = &ChallengeState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challengestate.Table, sqlgraph.NewFieldSpec(challengestate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(challengestate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(challengestate.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(challengestate.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Current(); ok {
		_spec.SetField(challengestate.FieldCurrent, field.TypeInt, value)
		_node.Current = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(challengestate.FieldTarget, field.TypeInt, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.XpReward(); ok {
		_spec.SetField(challengestate.FieldXpReward, field.TypeInt, value)
		_node.XpReward = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(challengestate.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.WeekStart(); ok {
		_spec.SetField(challengestate.FieldWeekStart, field.TypeTime, value)
		_node.WeekStart = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(challengestate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ChallengeStateCreateBulk is the builder for creating many ChallengeState entities in bulk.
type ChallengeStateCreateBulk struct {
	config
	err      error
	builders []*ChallengeStateCreate
}

// Save creates the ChallengeState entities in the database.
func (_c *ChallengeStateCreateBulk) Save(ctx context.Context) ([]*ChallengeState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChallengeState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeStateMutation)
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
func (_c *ChallengeStateCreateBulk) SaveX(ctx context.Context) []*ChallengeState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
