// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/cyberquest/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProfileCreate) SetUserID(v string) *ProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetXp sets the "xp" field.
func (_c *ProfileCreate) SetXp(v int) *ProfileCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableXp(v *int) *ProfileCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetTotalEarnedXp sets the "total_earned_xp" field.
func (_c *ProfileCreate) SetTotalEarnedXp(v int) *ProfileCreate {
	_c.mutation.SetTotalEarnedXp(v)
	return _c
}

// SetNillableTotalEarnedXp sets the "total_earned_xp" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableTotalEarnedXp(v *int) *ProfileCreate {
	if v != nil {
		_c.SetTotalEarnedXp(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ProfileCreate) SetStreak(v int) *ProfileCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableStreak(v *int) *ProfileCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetCompletedModules sets the "completed_modules" field.
func (_c *ProfileCreate) SetCompletedModules(v int) *ProfileCreate {
	_c.mutation.SetCompletedModules(v)
	return _c
}

// SetNillableCompletedModules sets the "completed_modules" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCompletedModules(v *int) *ProfileCreate {
	if v != nil {
		_c.SetCompletedModules(*v)
	}
	return _c
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_c *ProfileCreate) SetExercisesCompleted(v int) *ProfileCreate {
	_c.mutation.SetExercisesCompleted(v)
	return _c
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableExercisesCompleted(v *int) *ProfileCreate {
	if v != nil {
		_c.SetExercisesCompleted(*v)
	}
	return _c
}

// SetWeekStart sets the "week_start" field.
func (_c *ProfileCreate) SetWeekStart(v time.Time) *ProfileCreate {
	_c.mutation.SetWeekStart(v)
	return _c
}

// SetNillableWeekStart sets the "week_start" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableWeekStart(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetWeekStart(*v)
	}
	return _c
}

// SetLastActive sets the "last_active" field.
func (_c *ProfileCreate) SetLastActive(v time.Time) *ProfileCreate {
	_c.mutation.SetLastActive(v)
	return _c
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLastActive(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetLastActive(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.Xp(); !ok {
		v := profile.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.TotalEarnedXp(); !ok {
		v := profile.DefaultTotalEarnedXp
		_c.mutation.SetTotalEarnedXp(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := profile.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.CompletedModules(); !ok {
		v := profile.DefaultCompletedModules
		_c.mutation.SetCompletedModules(v)
	}
	if _, ok := _c.mutation.ExercisesCompleted(); !ok {
		v := profile.DefaultExercisesCompleted
		_c.mutation.SetExercisesCompleted(v)
	}
	if _, ok := _c.mutation.WeekStart(); !ok {
		v := profile.DefaultWeekStart()
		_c.mutation.SetWeekStart(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Profile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := profile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Profile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "Profile.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalEarnedXp(); !ok {
		return &ValidationError{Name: "total_earned_xp", err: errors.New(`ent: missing required field "Profile.total_earned_xp"`)}
	}
	if v, ok := _c.mutation.TotalEarnedXp(); ok {
		if err := profile.TotalEarnedXpValidator(v); err != nil {
			return &ValidationError{Name: "total_earned_xp", err: fmt.Errorf(`ent: validator failed for field "Profile.total_earned_xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "Profile.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := profile.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Profile.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedModules(); !ok {
		return &ValidationError{Name: "completed_modules", err: errors.New(`ent: missing required field "Profile.completed_modules"`)}
	}
	if v, ok := _c.mutation.CompletedModules(); ok {
		if err := profile.CompletedModulesValidator(v); err != nil {
			return &ValidationError{Name: "completed_modules", err: fmt.Errorf(`ent: validator failed for field "Profile.completed_modules": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExercisesCompleted(); !ok {
		return &ValidationError{Name: "exercises_completed", err: errors.New(`ent: missing required field "Profile.exercises_completed"`)}
	}
	if v, ok := _c.mutation.ExercisesCompleted(); ok {
		if err := profile.ExercisesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "exercises_completed", err: fmt.Errorf(`ent: validator failed for field "Profile.exercises_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeekStart(); !ok {
		return &ValidationError{Name: "week_start", err: errors.New(`ent: missing required field "Profile.week_start"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(profile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.TotalEarnedXp(); ok {
		_spec.SetField(profile.FieldTotalEarnedXp, field.TypeInt, value)
		_node.TotalEarnedXp = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(profile.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.CompletedModules(); ok {
		_spec.SetField(profile.FieldCompletedModules, field.TypeInt, value)
		_node.CompletedModules = value
	}
	if value, ok := _c.mutation.ExercisesCompleted(); ok {
		_spec.SetField(profile.FieldExercisesCompleted, field.TypeInt, value)
		_node.ExercisesCompleted = value
	}
	if value, ok := _c.mutation.WeekStart(); ok {
		_spec.SetField(profile.FieldWeekStart, field.TypeTime, value)
		_node.WeekStart = value
	}
	if value, ok := _c.mutation.LastActive(); ok {
		_spec.SetField(profile.FieldLastActive, field.TypeTime, value)
		_node.LastActive = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
