// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/cyberquest/ent/leaderboardentry"
)

// LeaderboardEntryCreate is the builder for creating a LeaderboardEntry entity.
type LeaderboardEntryCreate struct {
	config
	mutation *LeaderboardEntryMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LeaderboardEntryCreate) SetName(v string) *LeaderboardEntryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetXp sets the "xp" field.
func (_c *LeaderboardEntryCreate) SetXp(v int) *LeaderboardEntryCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *LeaderboardEntryCreate) SetNillableXp(v *int) *LeaderboardEntryCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *LeaderboardEntryCreate) SetLevel(v int) *LeaderboardEntryCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *LeaderboardEntryCreate) SetNillableLevel(v *int) *LeaderboardEntryCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *LeaderboardEntryCreate) SetStreak(v int) *LeaderboardEntryCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *LeaderboardEntryCreate) SetNillableStreak(v *int) *LeaderboardEntryCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetBadge sets the "badge" field.
func (_c *LeaderboardEntryCreate) SetBadge(v string) *LeaderboardEntryCreate {
	_c.mutation.SetBadge(v)
	return _c
}

// Mutation returns the LeaderboardEntryMutation object of the builder.
func (_c *LeaderboardEntryCreate) Mutation() *LeaderboardEntryMutation {
	return _c.mutation
}

// Save creates the LeaderboardEntry in the database.
func (_c *LeaderboardEntryCreate) Save(ctx context.Context) (*LeaderboardEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeaderboardEntryCreate) SaveX(ctx context.Context) *LeaderboardEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaderboardEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaderboardEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeaderboardEntryCreate) defaults() {
	if _, ok := _c.mutation.Xp(); !ok {
		v := leaderboardentry.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := leaderboardentry.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := leaderboardentry.DefaultStreak
		_c.mutation.SetStreak(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeaderboardEntryCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "LeaderboardEntry.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := leaderboardentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "LeaderboardEntry.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := leaderboardentry.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LeaderboardEntry.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := leaderboardentry.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "LeaderboardEntry.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := leaderboardentry.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Badge(); !ok {
		return &ValidationError{Name: "badge", err: errors.New(`ent: missing required field "LeaderboardEntry.badge"`)}
	}
	if v, ok := _c.mutation.Badge(); ok {
		if err := leaderboardentry.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.badge": %w`, err)}
		}
	}
	return nil
}

func (_c *LeaderboardEntryCreate) sqlSave(ctx context.Context) (*LeaderboardEntry, error) {
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

func (_c *LeaderboardEntryCreate) createSpec() (*LeaderboardEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LeaderboardEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leaderboardentry.Table, sqlgraph.NewFieldSpec(leaderboardentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(leaderboardentry.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(leaderboardentry.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(leaderboardentry.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(leaderboardentry.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.Badge(); ok {
		_spec.SetField(leaderboardentry.FieldBadge, field.TypeString, value)
		_node.Badge = value
	}
	return _node, _spec
}

// LeaderboardEntryCreateBulk is the builder for creating many LeaderboardEntry entities in bulk.
type LeaderboardEntryCreateBulk struct {
	config
	err      error
	builders []*LeaderboardEntryCreate
}

// Save creates the LeaderboardEntry entities in the database.
func (_c *LeaderboardEntryCreateBulk) Save(ctx context.Context) ([]*LeaderboardEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeaderboardEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeaderboardEntryMutation)
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
func (_c *LeaderboardEntryCreateBulk) SaveX(ctx context.Context) []*LeaderboardEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaderboardEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaderboardEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
