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
	"github.com/asengupta/cyberquest/ent/challengestate"
	"github.com/asengupta/cyberquest/ent/predicate"
)

// ChallengeStateUpdate is the builder for updating ChallengeState entities.
type ChallengeStateUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeStateMutation
}

// Where appends a list predicates to the ChallengeStateUpdate builder.
func (_u *ChallengeStateUpdate) Where(ps ...predicate.ChallengeState) *ChallengeStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChallengeStateUpdate) SetUserID(v string) *ChallengeStateUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChallengeStateUpdate) SetNillableUserID(v *string) *ChallengeStateUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeStateUpdate) SetChallengeID(v string) *ChallengeStateUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeStateUpdate) SetNillableChallengeID(v *string) *ChallengeStateUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ChallengeStateUpdate) SetCategory(v string) *ChallengeStateUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ChallengeStateUpdate) SetNillableCategory(v *string) *ChallengeStateUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCurrent sets the "current" field.
func (_u *ChallengeStateUpdate) SetCurrent(v int) *ChallengeStateUpdate {
	_u.mutation.ResetCurrent()
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *ChallengeStateUpdate) SetNillableCurrent(v *int) *ChallengeStateUpdate {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// AddCurrent adds value to the "current" field.
func (_u *ChallengeStateUpdate) AddCurrent(v int) *ChallengeStateUpdate {
	_u.mutation.AddCurrent(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *ChallengeStateUpdate) SetTarget(v int) *ChallengeStateUpdate {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *ChallengeStateUpdate) SetNillableTarget(v *int) *ChallengeStateUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *ChallengeStateUpdate) AddTarget(v int) *ChallengeStateUpdate {
	_u.mutation.AddTarget(v)
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *ChallengeStateUpdate) SetXpReward(v int) *ChallengeStateUpdate {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *ChallengeStateUpdate) SetNillableXpReward(v *int) *ChallengeStateUpdate {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *ChallengeStateUpdate) AddXpReward(v int) *ChallengeStateUpdate {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ChallengeStateUpdate) SetCompleted(v bool) *ChallengeStateUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ChallengeStateUpdate) SetNillableCompleted(v *bool) *ChallengeStateUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetWeekStart sets the "week_start" field.
func (_u *ChallengeStateUpdate) SetWeekStart(v time.Time) *ChallengeStateUpdate {
	_u.mutation.SetWeekStart(v)
	return _u
}

// SetNillableWeekStart sets the "week_start" field if the given value is not nil.
func (_u *ChallengeStateUpdate) SetNillableWeekStart(v *time.Time) *ChallengeStateUpdate {
	if v != nil {
		_u.SetWeekStart(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChallengeStateUpdate) SetUpdatedAt(v time.Time) *ChallengeStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChallengeStateMutation object of the builder.
func (_u *ChallengeStateUpdate) Mutation() *ChallengeStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChallengeStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := challengestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeStateUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := challengestate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengestate.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := challengestate.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Current(); ok {
		if err := challengestate.CurrentValidator(v); err != nil {
			return &ValidationError{Name: "current", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.current": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Target(); ok {
		if err := challengestate.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpReward(); ok {
		if err := challengestate.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.xp_reward": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengestate.Table, challengestate.Columns, sqlgraph.NewFieldSpec(challengestate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(challengestate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengestate.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(challengestate.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(challengestate.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrent(); ok {
		_spec.AddField(challengestate.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(challengestate.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(challengestate.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(challengestate.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(challengestate.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(challengestate.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WeekStart(); ok {
		_spec.SetField(challengestate.FieldWeekStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(challengestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeStateUpdateOne is the builder for updating a single ChallengeState entity.
type ChallengeStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeStateMutation
}

// SetUserID sets the "user_id" field.
func (_u *ChallengeStateUpdateOne) SetUserID(v string) *ChallengeStateUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChallengeStateUpdateOne) SetNillableUserID(v *string) *ChallengeStateUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeStateUpdateOne) SetChallengeID(v string) *ChallengeStateUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeStateUpdateOne) SetNillableChallengeID(v *string) *ChallengeStateUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ChallengeStateUpdateOne) SetCategory(v string) *ChallengeStateUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ChallengeStateUpdateOne) SetNillableCategory(v *string) *ChallengeStateUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCurrent sets the "current" field.
func (_u *ChallengeStateUpdateOne) SetCurrent(v int) *ChallengeStateUpdateOne {
	_u.mutation.ResetCurrent()
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *ChallengeStateUpdateOne) SetNillableCurrent(v *int) *ChallengeStateUpdateOne {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// AddCurrent adds value to the "current" field.
func (_u *ChallengeStateUpdateOne) AddCurrent(v int) *ChallengeStateUpdateOne {
	_u.mutation.AddCurrent(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *ChallengeStateUpdateOne) SetTarget(v int) *ChallengeStateUpdateOne {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *ChallengeStateUpdateOne) SetNillableTarget(v *int) *ChallengeStateUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *ChallengeStateUpdateOne) AddTarget(v int) *ChallengeStateUpdateOne {
	_u.mutation.AddTarget(v)
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *ChallengeStateUpdateOne) SetXpReward(v int) *ChallengeStateUpdateOne {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *ChallengeStateUpdateOne) SetNillableXpReward(v *int) *ChallengeStateUpdateOne {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *ChallengeStateUpdateOne) AddXpReward(v int) *ChallengeStateUpdateOne {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ChallengeStateUpdateOne) SetCompleted(v bool) *ChallengeStateUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ChallengeStateUpdateOne) SetNillableCompleted(v *bool) *ChallengeStateUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetWeekStart sets the "week_start" field.
func (_u *ChallengeStateUpdateOne) SetWeekStart(v time.Time) *ChallengeStateUpdateOne {
	_u.mutation.SetWeekStart(v)
	return _u
}

// SetNillableWeekStart sets the "week_start" field if the given value is not nil.
func (_u *ChallengeStateUpdateOne) SetNillableWeekStart(v *time.Time) *ChallengeStateUpdateOne {
	if v != nil {
		_u.SetWeekStart(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChallengeStateUpdateOne) SetUpdatedAt(v time.Time) *ChallengeStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChallengeStateMutation object of the builder.
func (_u *ChallengeStateUpdateOne) Mutation() *ChallengeStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeStateUpdate builder.
func (_u *ChallengeStateUpdateOne) Where(ps ...predicate.ChallengeState) *ChallengeStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeStateUpdateOne) Select(field string, fields ...string) *ChallengeStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChallengeState entity.
func (_u *ChallengeStateUpdateOne) Save(ctx context.Context) (*ChallengeState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeStateUpdateOne) SaveX(ctx context.Context) *ChallengeState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChallengeStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := challengestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeStateUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := challengestate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengestate.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := challengestate.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Current(); ok {
		if err := challengestate.CurrentValidator(v); err != nil {
			return &ValidationError{Name: "current", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.current": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Target(); ok {
		if err := challengestate.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpReward(); ok {
		if err := challengestate.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "ChallengeState.xp_reward": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeStateUpdateOne) sqlSave(ctx context.Context) (_node *ChallengeState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengestate.Table, challengestate.Columns, sqlgraph.NewFieldSpec(challengestate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChallengeState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challengestate.FieldID)
		for _, f := range fields {
			if !challengestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challengestate.FieldID {
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
		_spec.SetField(challengestate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengestate.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(challengestate.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(challengestate.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrent(); ok {
		_spec.AddField(challengestate.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(challengestate.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(challengestate.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(challengestate.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(challengestate.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(challengestate.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WeekStart(); ok {
		_spec.SetField(challengestate.FieldWeekStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(challengestate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChallengeState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
