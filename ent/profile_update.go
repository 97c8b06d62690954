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
	"github.com/asengupta/cyberquest/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProfileUpdate) SetUserID(v string) *ProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableUserID(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProfileUpdate) SetXp(v int) *ProfileUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableXp(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProfileUpdate) AddXp(v int) *ProfileUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetTotalEarnedXp sets the "total_earned_xp" field.
func (_u *ProfileUpdate) SetTotalEarnedXp(v int) *ProfileUpdate {
	_u.mutation.ResetTotalEarnedXp()
	_u.mutation.SetTotalEarnedXp(v)
	return _u
}

// SetNillableTotalEarnedXp sets the "total_earned_xp" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTotalEarnedXp(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetTotalEarnedXp(*v)
	}
	return _u
}

// AddTotalEarnedXp adds value to the "total_earned_xp" field.
func (_u *ProfileUpdate) AddTotalEarnedXp(v int) *ProfileUpdate {
	_u.mutation.AddTotalEarnedXp(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProfileUpdate) SetStreak(v int) *ProfileUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStreak(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProfileUpdate) AddStreak(v int) *ProfileUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetCompletedModules sets the "completed_modules" field.
func (_u *ProfileUpdate) SetCompletedModules(v int) *ProfileUpdate {
	_u.mutation.ResetCompletedModules()
	_u.mutation.SetCompletedModules(v)
	return _u
}

// SetNillableCompletedModules sets the "completed_modules" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCompletedModules(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetCompletedModules(*v)
	}
	return _u
}

// AddCompletedModules adds value to the "completed_modules" field.
func (_u *ProfileUpdate) AddCompletedModules(v int) *ProfileUpdate {
	_u.mutation.AddCompletedModules(v)
	return _u
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_u *ProfileUpdate) SetExercisesCompleted(v int) *ProfileUpdate {
	_u.mutation.ResetExercisesCompleted()
	_u.mutation.SetExercisesCompleted(v)
	return _u
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableExercisesCompleted(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetExercisesCompleted(*v)
	}
	return _u
}

// AddExercisesCompleted adds value to the "exercises_completed" field.
func (_u *ProfileUpdate) AddExercisesCompleted(v int) *ProfileUpdate {
	_u.mutation.AddExercisesCompleted(v)
	return _u
}

// SetWeekStart sets the "week_start" field.
func (_u *ProfileUpdate) SetWeekStart(v time.Time) *ProfileUpdate {
	_u.mutation.SetWeekStart(v)
	return _u
}

// SetNillableWeekStart sets the "week_start" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableWeekStart(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetWeekStart(*v)
	}
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *ProfileUpdate) SetLastActive(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastActive(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// ClearLastActive clears the value of the "last_active" field.
func (_u *ProfileUpdate) ClearLastActive() *ProfileUpdate {
	_u.mutation.ClearLastActive()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := profile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Profile.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalEarnedXp(); ok {
		if err := profile.TotalEarnedXpValidator(v); err != nil {
			return &ValidationError{Name: "total_earned_xp", err: fmt.Errorf(`ent: validator failed for field "Profile.total_earned_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := profile.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Profile.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedModules(); ok {
		if err := profile.CompletedModulesValidator(v); err != nil {
			return &ValidationError{Name: "completed_modules", err: fmt.Errorf(`ent: validator failed for field "Profile.completed_modules": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExercisesCompleted(); ok {
		if err := profile.ExercisesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "exercises_completed", err: fmt.Errorf(`ent: validator failed for field "Profile.exercises_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(profile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalEarnedXp(); ok {
		_spec.SetField(profile.FieldTotalEarnedXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalEarnedXp(); ok {
		_spec.AddField(profile.FieldTotalEarnedXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedModules(); ok {
		_spec.SetField(profile.FieldCompletedModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedModules(); ok {
		_spec.AddField(profile.FieldCompletedModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesCompleted(); ok {
		_spec.SetField(profile.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCompleted(); ok {
		_spec.AddField(profile.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekStart(); ok {
		_spec.SetField(profile.FieldWeekStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(profile.FieldLastActive, field.TypeTime, value)
	}
	if _u.mutation.LastActiveCleared() {
		_spec.ClearField(profile.FieldLastActive, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProfileUpdateOne) SetUserID(v string) *ProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableUserID(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProfileUpdateOne) SetXp(v int) *ProfileUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableXp(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProfileUpdateOne) AddXp(v int) *ProfileUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetTotalEarnedXp sets the "total_earned_xp" field.
func (_u *ProfileUpdateOne) SetTotalEarnedXp(v int) *ProfileUpdateOne {
	_u.mutation.ResetTotalEarnedXp()
	_u.mutation.SetTotalEarnedXp(v)
	return _u
}

// SetNillableTotalEarnedXp sets the "total_earned_xp" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTotalEarnedXp(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetTotalEarnedXp(*v)
	}
	return _u
}

// AddTotalEarnedXp adds value to the "total_earned_xp" field.
func (_u *ProfileUpdateOne) AddTotalEarnedXp(v int) *ProfileUpdateOne {
	_u.mutation.AddTotalEarnedXp(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProfileUpdateOne) SetStreak(v int) *ProfileUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStreak(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProfileUpdateOne) AddStreak(v int) *ProfileUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetCompletedModules sets the "completed_modules" field.
func (_u *ProfileUpdateOne) SetCompletedModules(v int) *ProfileUpdateOne {
	_u.mutation.ResetCompletedModules()
	_u.mutation.SetCompletedModules(v)
	return _u
}

// SetNillableCompletedModules sets the "completed_modules" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCompletedModules(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetCompletedModules(*v)
	}
	return _u
}

// AddCompletedModules adds value to the "completed_modules" field.
func (_u *ProfileUpdateOne) AddCompletedModules(v int) *ProfileUpdateOne {
	_u.mutation.AddCompletedModules(v)
	return _u
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_u *ProfileUpdateOne) SetExercisesCompleted(v int) *ProfileUpdateOne {
	_u.mutation.ResetExercisesCompleted()
	_u.mutation.SetExercisesCompleted(v)
	return _u
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableExercisesCompleted(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetExercisesCompleted(*v)
	}
	return _u
}

// AddExercisesCompleted adds value to the "exercises_completed" field.
func (_u *ProfileUpdateOne) AddExercisesCompleted(v int) *ProfileUpdateOne {
	_u.mutation.AddExercisesCompleted(v)
	return _u
}

// SetWeekStart sets the "week_start" field.
func (_u *ProfileUpdateOne) SetWeekStart(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetWeekStart(v)
	return _u
}

// SetNillableWeekStart sets the "week_start" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableWeekStart(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetWeekStart(*v)
	}
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *ProfileUpdateOne) SetLastActive(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastActive(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// ClearLastActive clears the value of the "last_active" field.
func (_u *ProfileUpdateOne) ClearLastActive() *ProfileUpdateOne {
	_u.mutation.ClearLastActive()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := profile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Profile.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalEarnedXp(); ok {
		if err := profile.TotalEarnedXpValidator(v); err != nil {
			return &ValidationError{Name: "total_earned_xp", err: fmt.Errorf(`ent: validator failed for field "Profile.total_earned_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := profile.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Profile.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedModules(); ok {
		if err := profile.CompletedModulesValidator(v); err != nil {
			return &ValidationError{Name: "completed_modules", err: fmt.Errorf(`ent: validator failed for field "Profile.completed_modules": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExercisesCompleted(); ok {
		if err := profile.ExercisesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "exercises_completed", err: fmt.Errorf(`ent: validator failed for field "Profile.exercises_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
		_spec.SetField(profile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalEarnedXp(); ok {
		_spec.SetField(profile.FieldTotalEarnedXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalEarnedXp(); ok {
		_spec.AddField(profile.FieldTotalEarnedXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedModules(); ok {
		_spec.SetField(profile.FieldCompletedModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedModules(); ok {
		_spec.AddField(profile.FieldCompletedModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesCompleted(); ok {
		_spec.SetField(profile.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCompleted(); ok {
		_spec.AddField(profile.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekStart(); ok {
		_spec.SetField(profile.FieldWeekStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(profile.FieldLastActive, field.TypeTime, value)
	}
	if _u.mutation.LastActiveCleared() {
		_spec.ClearField(profile.FieldLastActive, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
