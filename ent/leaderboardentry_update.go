// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/cyberquest/ent/leaderboardentry"
	"github.com/asengupta/cyberquest/ent/predicate"
)

// LeaderboardEntryUpdate is the builder for updating LeaderboardEntry entities.
type LeaderboardEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LeaderboardEntryMutation
}

// Where appends a list predicates to the LeaderboardEntryUpdate builder.
func (_u *LeaderboardEntryUpdate) Where(ps ...predicate.LeaderboardEntry) *LeaderboardEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LeaderboardEntryUpdate) SetName(v string) *LeaderboardEntryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeaderboardEntryUpdate) SetNillableName(v *string) *LeaderboardEntryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *LeaderboardEntryUpdate) SetXp(v int) *LeaderboardEntryUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *LeaderboardEntryUpdate) SetNillableXp(v *int) *LeaderboardEntryUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *LeaderboardEntryUpdate) AddXp(v int) *LeaderboardEntryUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *LeaderboardEntryUpdate) SetLevel(v int) *LeaderboardEntryUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LeaderboardEntryUpdate) SetNillableLevel(v *int) *LeaderboardEntryUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LeaderboardEntryUpdate) AddLevel(v int) *LeaderboardEntryUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *LeaderboardEntryUpdate) SetStreak(v int) *LeaderboardEntryUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *LeaderboardEntryUpdate) SetNillableStreak(v *int) *LeaderboardEntryUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *LeaderboardEntryUpdate) AddStreak(v int) *LeaderboardEntryUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *LeaderboardEntryUpdate) SetBadge(v string) *LeaderboardEntryUpdate {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *LeaderboardEntryUpdate) SetNillableBadge(v *string) *LeaderboardEntryUpdate {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// Mutation returns the LeaderboardEntryMutation object of the builder.
func (_u *LeaderboardEntryUpdate) Mutation() *LeaderboardEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeaderboardEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaderboardEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeaderboardEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaderboardEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaderboardEntryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := leaderboardentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := leaderboardentry.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := leaderboardentry.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := leaderboardentry.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Badge(); ok {
		if err := leaderboardentry.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.badge": %w`, err)}
		}
	}
	return nil
}

func (_u *LeaderboardEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leaderboardentry.Table, leaderboardentry.Columns, sqlgraph.NewFieldSpec(leaderboardentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(leaderboardentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(leaderboardentry.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(leaderboardentry.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(leaderboardentry.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(leaderboardentry.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(leaderboardentry.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(leaderboardentry.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(leaderboardentry.FieldBadge, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaderboardentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeaderboardEntryUpdateOne is the builder for updating a single LeaderboardEntry entity.
type LeaderboardEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeaderboardEntryMutation
}

// SetName sets the "name" field.
func (_u *LeaderboardEntryUpdateOne) SetName(v string) *LeaderboardEntryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeaderboardEntryUpdateOne) SetNillableName(v *string) *LeaderboardEntryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *LeaderboardEntryUpdateOne) SetXp(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *LeaderboardEntryUpdateOne) SetNillableXp(v *int) *LeaderboardEntryUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *LeaderboardEntryUpdateOne) AddXp(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *LeaderboardEntryUpdateOne) SetLevel(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LeaderboardEntryUpdateOne) SetNillableLevel(v *int) *LeaderboardEntryUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LeaderboardEntryUpdateOne) AddLevel(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *LeaderboardEntryUpdateOne) SetStreak(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *LeaderboardEntryUpdateOne) SetNillableStreak(v *int) *LeaderboardEntryUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *LeaderboardEntryUpdateOne) AddStreak(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *LeaderboardEntryUpdateOne) SetBadge(v string) *LeaderboardEntryUpdateOne {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *LeaderboardEntryUpdateOne) SetNillableBadge(v *string) *LeaderboardEntryUpdateOne {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// Mutation returns the LeaderboardEntryMutation object of the builder.
func (_u *LeaderboardEntryUpdateOne) Mutation() *LeaderboardEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeaderboardEntryUpdate builder.
func (_u *LeaderboardEntryUpdateOne) Where(ps ...predicate.LeaderboardEntry) *LeaderboardEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeaderboardEntryUpdateOne) Select(field string, fields ...string) *LeaderboardEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeaderboardEntry entity.
func (_u *LeaderboardEntryUpdateOne) Save(ctx context.Context) (*LeaderboardEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaderboardEntryUpdateOne) SaveX(ctx context.Context) *LeaderboardEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeaderboardEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaderboardEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaderboardEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := leaderboardentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := leaderboardentry.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := leaderboardentry.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := leaderboardentry.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Badge(); ok {
		if err := leaderboardentry.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.badge": %w`, err)}
		}
	}
	return nil
}

func (_u *LeaderboardEntryUpdateOne) sqlSave(ctx context.Context) (_node *LeaderboardEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leaderboardentry.Table, leaderboardentry.Columns, sqlgraph.NewFieldSpec(leaderboardentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeaderboardEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leaderboardentry.FieldID)
		for _, f := range fields {
			if !leaderboardentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leaderboardentry.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(leaderboardentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(leaderboardentry.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(leaderboardentry.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(leaderboardentry.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(leaderboardentry.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(leaderboardentry.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(leaderboardentry.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(leaderboardentry.FieldBadge, field.TypeString, value)
	}
	_node = &LeaderboardEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaderboardentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
