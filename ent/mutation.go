// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/asengupta/cyberquest/ent/challengestate"
	"github.com/asengupta/cyberquest/ent/leaderboardentry"
	"github.com/asengupta/cyberquest/ent/predicate"
	"github.com/asengupta/cyberquest/ent/profile"
	"github.com/asengupta/cyberquest/ent/taskcompletion"
	"github.com/asengupta/cyberquest/ent/xpevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChallengeState   = "ChallengeState"
	TypeLeaderboardEntry = "LeaderboardEntry"
	TypeProfile          = "Profile"
	TypeTaskCompletion   = "TaskCompletion"
	TypeXPEvent          = "XPEvent"
)

// ChallengeStateMutation represents an operation that mutates the ChallengeState nodes in the graph.
type ChallengeStateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	challenge_id  *string
	category      *string
	current       *int
	addcurrent    *int
	target        *int
	addtarget     *int
	xp_reward     *int
	addxp_reward  *int
	completed     *bool
	week_start    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChallengeState, error)
	predicates    []predicate.ChallengeState
}

var _ ent.Mutation = (*ChallengeStateMutation)(nil)

// challengestateOption allows management of the mutation configuration using functional options.
type challengestateOption func(*ChallengeStateMutation)

// newChallengeStateMutation creates new mutation for the ChallengeState entity.
func newChallengeStateMutation(c config, op Op, opts ...challengestateOption) *ChallengeStateMutation {
	m := &ChallengeStateMutation{
		config:        c,
		op:            op,
		typ:           TypeChallengeState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChallengeStateID sets the ID field of the mutation.
func withChallengeStateID(id int) challengestateOption {
	return func(m *ChallengeStateMutation) {
		var (
			err   error
			once  sync.Once
			value *ChallengeState
		)
		m.oldValue = func(ctx context.Context) (*ChallengeState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChallengeState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChallengeState sets the old ChallengeState of the mutation.
func withChallengeState(node *ChallengeState) challengestateOption {
	return func(m *ChallengeStateMutation) {
		m.oldValue = func(context.Context) (*ChallengeState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChallengeStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChallengeStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChallengeStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChallengeStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChallengeState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ChallengeStateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChallengeStateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChallengeState entity.
// If the ChallengeState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeStateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChallengeStateMutation) ResetUserID() {
	m.user_id = nil
}

// SetChallengeID sets the "challenge_id" field.
func (m *ChallengeStateMutation) SetChallengeID(s string) {
	m.challenge_id = &s
}

// ChallengeID returns the value of the "challenge_id" field in the mutation.
func (m *ChallengeStateMutation) ChallengeID() (r string, exists bool) {
	v := m.challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeID returns the old "challenge_id" field's value of the ChallengeState entity.
// If the ChallengeState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeStateMutation) OldChallengeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeID: %w", err)
	}
	return oldValue.ChallengeID, nil
}

// ResetChallengeID resets all changes to the "challenge_id" field.
func (m *ChallengeStateMutation) ResetChallengeID() {
	m.challenge_id = nil
}

// SetCategory sets the "category" field.
func (m *ChallengeStateMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ChallengeStateMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ChallengeState entity.
// If the ChallengeState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeStateMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ChallengeStateMutation) ResetCategory() {
	m.category = nil
}

// SetCurrent sets the "current" field.
func (m *ChallengeStateMutation) SetCurrent(i int) {
	m.current = &i
	m.addcurrent = nil
}

// Current returns the value of the "current" field in the mutation.
func (m *ChallengeStateMutation) Current() (r int, exists bool) {
	v := m.current
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrent returns the old "current" field's value of the ChallengeState entity.
// If the ChallengeState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeStateMutation) OldCurrent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrent: %w", err)
	}
	return oldValue.Current, nil
}

// AddCurrent adds i to the "current" field.
func (m *ChallengeStateMutation) AddCurrent(i int) {
	if m.addcurrent != nil {
		*m.addcurrent += i
	} else {
		m.addcurrent = &i
	}
}

// AddedCurrent returns the value that was added to the "current" field in this mutation.
func (m *ChallengeStateMutation) AddedCurrent() (r int, exists bool) {
	v := m.addcurrent
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrent resets all changes to the "current" field.
func (m *ChallengeStateMutation) ResetCurrent() {
	m.current = nil
	m.addcurrent = nil
}

// SetTarget sets the "target" field.
func (m *ChallengeStateMutation) SetTarget(i int) {
	m.target = &i
	m.addtarget = nil
}

// Target returns the value of the "target" field in the mutation.
func (m *ChallengeStateMutation) Target() (r int, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the ChallengeState entity.
// If the ChallengeState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeStateMutation) OldTarget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// AddTarget adds i to the "target" field.
func (m *ChallengeStateMutation) AddTarget(i int) {
	if m.addtarget != nil {
		*m.addtarget += i
	} else {
		m.addtarget = &i
	}
}

// AddedTarget returns the value that was added to the "target" field in this mutation.
func (m *ChallengeStateMutation) AddedTarget() (r int, exists bool) {
	v := m.addtarget
	if v == nil {
		return
	}
	return *v, true
}

// ResetTarget resets all changes to the "target" field.
func (m *ChallengeStateMutation) ResetTarget() {
	m.target = nil
	m.addtarget = nil
}

// SetXpReward sets the "xp_reward" field.
func (m *ChallengeStateMutation) SetXpReward(i int) {
	m.xp_reward = &i
	m.addxp_reward = nil
}

// XpReward returns the value of the "xp_reward" field in the mutation.
func (m *ChallengeStateMutation) XpReward() (r int, exists bool) {
	v := m.xp_reward
	if v == nil {
		return
	}
	return *v, true
}

// OldXpReward returns the old "xp_reward" field's value of the ChallengeState entity.
// If the ChallengeState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeStateMutation) OldXpReward(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpReward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpReward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpReward: %w", err)
	}
	return oldValue.XpReward, nil
}

// AddXpReward adds i to the "xp_reward" field.
func (m *ChallengeStateMutation) AddXpReward(i int) {
	if m.addxp_reward != nil {
		*m.addxp_reward += i
	} else {
		m.addxp_reward = &i
	}
}

// AddedXpReward returns the value that was added to the "xp_reward" field in this mutation.
func (m *ChallengeStateMutation) AddedXpReward() (r int, exists bool) {
	v := m.addxp_reward
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpReward resets all changes to the "xp_reward" field.
func (m *ChallengeStateMutation) ResetXpReward() {
	m.xp_reward = nil
	m.addxp_reward = nil
}

// SetCompleted sets the "completed" field.
func (m *ChallengeStateMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *ChallengeStateMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the ChallengeState entity.
// If the ChallengeState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeStateMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *ChallengeStateMutation) ResetCompleted() {
	m.completed = nil
}

// SetWeekStart sets the "week_start" field.
func (m *ChallengeStateMutation) SetWeekStart(t time.Time) {
	m.week_start = &t
}

// WeekStart returns the value of the "week_start" field in the mutation.
func (m *ChallengeStateMutation) WeekStart() (r time.Time, exists bool) {
	v := m.week_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekStart returns the old "week_start" field's value of the ChallengeState entity.
// If the ChallengeState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeStateMutation) OldWeekStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekStart: %w", err)
	}
	return oldValue.WeekStart, nil
}

// ResetWeekStart resets all changes to the "week_start" field.
func (m *ChallengeStateMutation) ResetWeekStart() {
	m.week_start = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChallengeStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChallengeStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChallengeState entity.
// If the ChallengeState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChallengeStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ChallengeStateMutation builder.
func (m *ChallengeStateMutation) Where(ps ...predicate.ChallengeState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChallengeStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChallengeStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChallengeState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChallengeStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChallengeStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChallengeState).
func (m *ChallengeStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChallengeStateMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, challengestate.FieldUserID)
	}
	if m.challenge_id != nil {
		fields = append(fields, challengestate.FieldChallengeID)
	}
	if m.category != nil {
		fields = append(fields, challengestate.FieldCategory)
	}
	if m.current != nil {
		fields = append(fields, challengestate.FieldCurrent)
	}
	if m.target != nil {
		fields = append(fields, challengestate.FieldTarget)
	}
	if m.xp_reward != nil {
		fields = append(fields, challengestate.FieldXpReward)
	}
	if m.completed != nil {
		fields = append(fields, challengestate.FieldCompleted)
	}
	if m.week_start != nil {
		fields = append(fields, challengestate.FieldWeekStart)
	}
	if m.updated_at != nil {
		fields = append(fields, challengestate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChallengeStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case challengestate.FieldUserID:
		return m.UserID()
	case challengestate.FieldChallengeID:
		return m.ChallengeID()
	case challengestate.FieldCategory:
		return m.Category()
	case challengestate.FieldCurrent:
		return m.Current()
	case challengestate.FieldTarget:
		return m.Target()
	case challengestate.FieldXpReward:
		return m.XpReward()
	case challengestate.FieldCompleted:
		return m.Completed()
	case challengestate.FieldWeekStart:
		return m.WeekStart()
	case challengestate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChallengeStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case challengestate.FieldUserID:
		return m.OldUserID(ctx)
	case challengestate.FieldChallengeID:
		return m.OldChallengeID(ctx)
	case challengestate.FieldCategory:
		return m.OldCategory(ctx)
	case challengestate.FieldCurrent:
		return m.OldCurrent(ctx)
	case challengestate.FieldTarget:
		return m.OldTarget(ctx)
	case challengestate.FieldXpReward:
		return m.OldXpReward(ctx)
	case challengestate.FieldCompleted:
		return m.OldCompleted(ctx)
	case challengestate.FieldWeekStart:
		return m.OldWeekStart(ctx)
	case challengestate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChallengeState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChallengeStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case challengestate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case challengestate.FieldChallengeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeID(v)
		return nil
	case challengestate.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case challengestate.FieldCurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrent(v)
		return nil
	case challengestate.FieldTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case challengestate.FieldXpReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpReward(v)
		return nil
	case challengestate.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case challengestate.FieldWeekStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekStart(v)
		return nil
	case challengestate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChallengeState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChallengeStateMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent != nil {
		fields = append(fields, challengestate.FieldCurrent)
	}
	if m.addtarget != nil {
		fields = append(fields, challengestate.FieldTarget)
	}
	if m.addxp_reward != nil {
		fields = append(fields, challengestate.FieldXpReward)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChallengeStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case challengestate.FieldCurrent:
		return m.AddedCurrent()
	case challengestate.FieldTarget:
		return m.AddedTarget()
	case challengestate.FieldXpReward:
		return m.AddedXpReward()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChallengeStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case challengestate.FieldCurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrent(v)
		return nil
	case challengestate.FieldTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTarget(v)
		return nil
	case challengestate.FieldXpReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpReward(v)
		return nil
	}
	return fmt.Errorf("unknown ChallengeState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChallengeStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChallengeStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChallengeStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChallengeState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChallengeStateMutation) ResetField(name string) error {
	switch name {
	case challengestate.FieldUserID:
		m.ResetUserID()
		return nil
	case challengestate.FieldChallengeID:
		m.ResetChallengeID()
		return nil
	case challengestate.FieldCategory:
		m.ResetCategory()
		return nil
	case challengestate.FieldCurrent:
		m.ResetCurrent()
		return nil
	case challengestate.FieldTarget:
		m.ResetTarget()
		return nil
	case challengestate.FieldXpReward:
		m.ResetXpReward()
		return nil
	case challengestate.FieldCompleted:
		m.ResetCompleted()
		return nil
	case challengestate.FieldWeekStart:
		m.ResetWeekStart()
		return nil
	case challengestate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChallengeState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChallengeStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChallengeStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChallengeStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChallengeStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChallengeStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChallengeStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChallengeStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChallengeState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChallengeStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChallengeState edge %s", name)
}

// LeaderboardEntryMutation represents an operation that mutates the LeaderboardEntry nodes in the graph.
type LeaderboardEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	xp            *int
	addxp         *int
	level         *int
	addlevel      *int
	streak        *int
	addstreak     *int
	badge         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LeaderboardEntry, error)
	predicates    []predicate.LeaderboardEntry
}

var _ ent.Mutation = (*LeaderboardEntryMutation)(nil)

// leaderboardentryOption allows management of the mutation configuration using functional options.
type leaderboardentryOption func(*LeaderboardEntryMutation)

// newLeaderboardEntryMutation creates new mutation for the LeaderboardEntry entity.
func newLeaderboardEntryMutation(c config, op Op, opts ...leaderboardentryOption) *LeaderboardEntryMutation {
	m := &LeaderboardEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLeaderboardEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeaderboardEntryID sets the ID field of the mutation.
func withLeaderboardEntryID(id int) leaderboardentryOption {
	return func(m *LeaderboardEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LeaderboardEntry
		)
		m.oldValue = func(ctx context.Context) (*LeaderboardEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeaderboardEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeaderboardEntry sets the old LeaderboardEntry of the mutation.
func withLeaderboardEntry(node *LeaderboardEntry) leaderboardentryOption {
	return func(m *LeaderboardEntryMutation) {
		m.oldValue = func(context.Context) (*LeaderboardEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeaderboardEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeaderboardEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeaderboardEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeaderboardEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeaderboardEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LeaderboardEntryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LeaderboardEntryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the LeaderboardEntry entity.
// If the LeaderboardEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderboardEntryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LeaderboardEntryMutation) ResetName() {
	m.name = nil
}

// SetXp sets the "xp" field.
func (m *LeaderboardEntryMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *LeaderboardEntryMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the LeaderboardEntry entity.
// If the LeaderboardEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderboardEntryMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *LeaderboardEntryMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *LeaderboardEntryMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *LeaderboardEntryMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetLevel sets the "level" field.
func (m *LeaderboardEntryMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *LeaderboardEntryMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the LeaderboardEntry entity.
// If the LeaderboardEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderboardEntryMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *LeaderboardEntryMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *LeaderboardEntryMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *LeaderboardEntryMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetStreak sets the "streak" field.
func (m *LeaderboardEntryMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *LeaderboardEntryMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the LeaderboardEntry entity.
// If the LeaderboardEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderboardEntryMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *LeaderboardEntryMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *LeaderboardEntryMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *LeaderboardEntryMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetBadge sets the "badge" field.
func (m *LeaderboardEntryMutation) SetBadge(s string) {
	m.badge = &s
}

// Badge returns the value of the "badge" field in the mutation.
func (m *LeaderboardEntryMutation) Badge() (r string, exists bool) {
	v := m.badge
	if v == nil {
		return
	}
	return *v, true
}

// OldBadge returns the old "badge" field's value of the LeaderboardEntry entity.
// If the LeaderboardEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderboardEntryMutation) OldBadge(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadge: %w", err)
	}
	return oldValue.Badge, nil
}

// ResetBadge resets all changes to the "badge" field.
func (m *LeaderboardEntryMutation) ResetBadge() {
	m.badge = nil
}

// Where appends a list predicates to the LeaderboardEntryMutation builder.
func (m *LeaderboardEntryMutation) Where(ps ...predicate.LeaderboardEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeaderboardEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeaderboardEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeaderboardEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeaderboardEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeaderboardEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeaderboardEntry).
func (m *LeaderboardEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeaderboardEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, leaderboardentry.FieldName)
	}
	if m.xp != nil {
		fields = append(fields, leaderboardentry.FieldXp)
	}
	if m.level != nil {
		fields = append(fields, leaderboardentry.FieldLevel)
	}
	if m.streak != nil {
		fields = append(fields, leaderboardentry.FieldStreak)
	}
	if m.badge != nil {
		fields = append(fields, leaderboardentry.FieldBadge)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeaderboardEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leaderboardentry.FieldName:
		return m.Name()
	case leaderboardentry.FieldXp:
		return m.Xp()
	case leaderboardentry.FieldLevel:
		return m.Level()
	case leaderboardentry.FieldStreak:
		return m.Streak()
	case leaderboardentry.FieldBadge:
		return m.Badge()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeaderboardEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leaderboardentry.FieldName:
		return m.OldName(ctx)
	case leaderboardentry.FieldXp:
		return m.OldXp(ctx)
	case leaderboardentry.FieldLevel:
		return m.OldLevel(ctx)
	case leaderboardentry.FieldStreak:
		return m.OldStreak(ctx)
	case leaderboardentry.FieldBadge:
		return m.OldBadge(ctx)
	}
	return nil, fmt.Errorf("unknown LeaderboardEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaderboardEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leaderboardentry.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case leaderboardentry.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case leaderboardentry.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case leaderboardentry.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case leaderboardentry.FieldBadge:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadge(v)
		return nil
	}
	return fmt.Errorf("unknown LeaderboardEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeaderboardEntryMutation) AddedFields() []string {
	var fields []string
	if m.addxp != nil {
		fields = append(fields, leaderboardentry.FieldXp)
	}
	if m.addlevel != nil {
		fields = append(fields, leaderboardentry.FieldLevel)
	}
	if m.addstreak != nil {
		fields = append(fields, leaderboardentry.FieldStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeaderboardEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case leaderboardentry.FieldXp:
		return m.AddedXp()
	case leaderboardentry.FieldLevel:
		return m.AddedLevel()
	case leaderboardentry.FieldStreak:
		return m.AddedStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaderboardEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case leaderboardentry.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	case leaderboardentry.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case leaderboardentry.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	}
	return fmt.Errorf("unknown LeaderboardEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeaderboardEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeaderboardEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeaderboardEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LeaderboardEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeaderboardEntryMutation) ResetField(name string) error {
	switch name {
	case leaderboardentry.FieldName:
		m.ResetName()
		return nil
	case leaderboardentry.FieldXp:
		m.ResetXp()
		return nil
	case leaderboardentry.FieldLevel:
		m.ResetLevel()
		return nil
	case leaderboardentry.FieldStreak:
		m.ResetStreak()
		return nil
	case leaderboardentry.FieldBadge:
		m.ResetBadge()
		return nil
	}
	return fmt.Errorf("unknown LeaderboardEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeaderboardEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeaderboardEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeaderboardEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeaderboardEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeaderboardEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeaderboardEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeaderboardEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LeaderboardEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeaderboardEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LeaderboardEntry edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *string
	xp                     *int
	addxp                  *int
	total_earned_xp        *int
	addtotal_earned_xp     *int
	streak                 *int
	addstreak              *int
	completed_modules      *int
	addcompleted_modules   *int
	exercises_completed    *int
	addexercises_completed *int
	week_start             *time.Time
	last_active            *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Profile, error)
	predicates             []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id int) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProfileMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProfileMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetXp sets the "xp" field.
func (m *ProfileMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *ProfileMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *ProfileMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *ProfileMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *ProfileMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetTotalEarnedXp sets the "total_earned_xp" field.
func (m *ProfileMutation) SetTotalEarnedXp(i int) {
	m.total_earned_xp = &i
	m.addtotal_earned_xp = nil
}

// TotalEarnedXp returns the value of the "total_earned_xp" field in the mutation.
func (m *ProfileMutation) TotalEarnedXp() (r int, exists bool) {
	v := m.total_earned_xp
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalEarnedXp returns the old "total_earned_xp" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldTotalEarnedXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalEarnedXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalEarnedXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalEarnedXp: %w", err)
	}
	return oldValue.TotalEarnedXp, nil
}

// AddTotalEarnedXp adds i to the "total_earned_xp" field.
func (m *ProfileMutation) AddTotalEarnedXp(i int) {
	if m.addtotal_earned_xp != nil {
		*m.addtotal_earned_xp += i
	} else {
		m.addtotal_earned_xp = &i
	}
}

// AddedTotalEarnedXp returns the value that was added to the "total_earned_xp" field in this mutation.
func (m *ProfileMutation) AddedTotalEarnedXp() (r int, exists bool) {
	v := m.addtotal_earned_xp
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalEarnedXp resets all changes to the "total_earned_xp" field.
func (m *ProfileMutation) ResetTotalEarnedXp() {
	m.total_earned_xp = nil
	m.addtotal_earned_xp = nil
}

// SetStreak sets the "streak" field.
func (m *ProfileMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *ProfileMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *ProfileMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *ProfileMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *ProfileMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetCompletedModules sets the "completed_modules" field.
func (m *ProfileMutation) SetCompletedModules(i int) {
	m.completed_modules = &i
	m.addcompleted_modules = nil
}

// CompletedModules returns the value of the "completed_modules" field in the mutation.
func (m *ProfileMutation) CompletedModules() (r int, exists bool) {
	v := m.completed_modules
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedModules returns the old "completed_modules" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCompletedModules(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedModules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedModules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedModules: %w", err)
	}
	return oldValue.CompletedModules, nil
}

// AddCompletedModules adds i to the "completed_modules" field.
func (m *ProfileMutation) AddCompletedModules(i int) {
	if m.addcompleted_modules != nil {
		*m.addcompleted_modules += i
	} else {
		m.addcompleted_modules = &i
	}
}

// AddedCompletedModules returns the value that was added to the "completed_modules" field in this mutation.
func (m *ProfileMutation) AddedCompletedModules() (r int, exists bool) {
	v := m.addcompleted_modules
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedModules resets all changes to the "completed_modules" field.
func (m *ProfileMutation) ResetCompletedModules() {
	m.completed_modules = nil
	m.addcompleted_modules = nil
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (m *ProfileMutation) SetExercisesCompleted(i int) {
	m.exercises_completed = &i
	m.addexercises_completed = nil
}

// ExercisesCompleted returns the value of the "exercises_completed" field in the mutation.
func (m *ProfileMutation) ExercisesCompleted() (r int, exists bool) {
	v := m.exercises_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldExercisesCompleted returns the old "exercises_completed" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldExercisesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercisesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercisesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercisesCompleted: %w", err)
	}
	return oldValue.ExercisesCompleted, nil
}

// AddExercisesCompleted adds i to the "exercises_completed" field.
func (m *ProfileMutation) AddExercisesCompleted(i int) {
	if m.addexercises_completed != nil {
		*m.addexercises_completed += i
	} else {
		m.addexercises_completed = &i
	}
}

// AddedExercisesCompleted returns the value that was added to the "exercises_completed" field in this mutation.
func (m *ProfileMutation) AddedExercisesCompleted() (r int, exists bool) {
	v := m.addexercises_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetExercisesCompleted resets all changes to the "exercises_completed" field.
func (m *ProfileMutation) ResetExercisesCompleted() {
	m.exercises_completed = nil
	m.addexercises_completed = nil
}

// SetWeekStart sets the "week_start" field.
func (m *ProfileMutation) SetWeekStart(t time.Time) {
	m.week_start = &t
}

// WeekStart returns the value of the "week_start" field in the mutation.
func (m *ProfileMutation) WeekStart() (r time.Time, exists bool) {
	v := m.week_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekStart returns the old "week_start" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldWeekStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekStart: %w", err)
	}
	return oldValue.WeekStart, nil
}

// ResetWeekStart resets all changes to the "week_start" field.
func (m *ProfileMutation) ResetWeekStart() {
	m.week_start = nil
}

// SetLastActive sets the "last_active" field.
func (m *ProfileMutation) SetLastActive(t time.Time) {
	m.last_active = &t
}

// LastActive returns the value of the "last_active" field in the mutation.
func (m *ProfileMutation) LastActive() (r time.Time, exists bool) {
	v := m.last_active
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActive returns the old "last_active" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldLastActive(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActive: %w", err)
	}
	return oldValue.LastActive, nil
}

// ClearLastActive clears the value of the "last_active" field.
func (m *ProfileMutation) ClearLastActive() {
	m.last_active = nil
	m.clearedFields[profile.FieldLastActive] = struct{}{}
}

// LastActiveCleared returns if the "last_active" field was cleared in this mutation.
func (m *ProfileMutation) LastActiveCleared() bool {
	_, ok := m.clearedFields[profile.FieldLastActive]
	return ok
}

// ResetLastActive resets all changes to the "last_active" field.
func (m *ProfileMutation) ResetLastActive() {
	m.last_active = nil
	delete(m.clearedFields, profile.FieldLastActive)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, profile.FieldUserID)
	}
	if m.xp != nil {
		fields = append(fields, profile.FieldXp)
	}
	if m.total_earned_xp != nil {
		fields = append(fields, profile.FieldTotalEarnedXp)
	}
	if m.streak != nil {
		fields = append(fields, profile.FieldStreak)
	}
	if m.completed_modules != nil {
		fields = append(fields, profile.FieldCompletedModules)
	}
	if m.exercises_completed != nil {
		fields = append(fields, profile.FieldExercisesCompleted)
	}
	if m.week_start != nil {
		fields = append(fields, profile.FieldWeekStart)
	}
	if m.last_active != nil {
		fields = append(fields, profile.FieldLastActive)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldUserID:
		return m.UserID()
	case profile.FieldXp:
		return m.Xp()
	case profile.FieldTotalEarnedXp:
		return m.TotalEarnedXp()
	case profile.FieldStreak:
		return m.Streak()
	case profile.FieldCompletedModules:
		return m.CompletedModules()
	case profile.FieldExercisesCompleted:
		return m.ExercisesCompleted()
	case profile.FieldWeekStart:
		return m.WeekStart()
	case profile.FieldLastActive:
		return m.LastActive()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldUserID:
		return m.OldUserID(ctx)
	case profile.FieldXp:
		return m.OldXp(ctx)
	case profile.FieldTotalEarnedXp:
		return m.OldTotalEarnedXp(ctx)
	case profile.FieldStreak:
		return m.OldStreak(ctx)
	case profile.FieldCompletedModules:
		return m.OldCompletedModules(ctx)
	case profile.FieldExercisesCompleted:
		return m.OldExercisesCompleted(ctx)
	case profile.FieldWeekStart:
		return m.OldWeekStart(ctx)
	case profile.FieldLastActive:
		return m.OldLastActive(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case profile.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case profile.FieldTotalEarnedXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalEarnedXp(v)
		return nil
	case profile.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case profile.FieldCompletedModules:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedModules(v)
		return nil
	case profile.FieldExercisesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercisesCompleted(v)
		return nil
	case profile.FieldWeekStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekStart(v)
		return nil
	case profile.FieldLastActive:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActive(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	var fields []string
	if m.addxp != nil {
		fields = append(fields, profile.FieldXp)
	}
	if m.addtotal_earned_xp != nil {
		fields = append(fields, profile.FieldTotalEarnedXp)
	}
	if m.addstreak != nil {
		fields = append(fields, profile.FieldStreak)
	}
	if m.addcompleted_modules != nil {
		fields = append(fields, profile.FieldCompletedModules)
	}
	if m.addexercises_completed != nil {
		fields = append(fields, profile.FieldExercisesCompleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldXp:
		return m.AddedXp()
	case profile.FieldTotalEarnedXp:
		return m.AddedTotalEarnedXp()
	case profile.FieldStreak:
		return m.AddedStreak()
	case profile.FieldCompletedModules:
		return m.AddedCompletedModules()
	case profile.FieldExercisesCompleted:
		return m.AddedExercisesCompleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case profile.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	case profile.FieldTotalEarnedXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalEarnedXp(v)
		return nil
	case profile.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case profile.FieldCompletedModules:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedModules(v)
		return nil
	case profile.FieldExercisesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExercisesCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldLastActive) {
		fields = append(fields, profile.FieldLastActive)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldLastActive:
		m.ClearLastActive()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldUserID:
		m.ResetUserID()
		return nil
	case profile.FieldXp:
		m.ResetXp()
		return nil
	case profile.FieldTotalEarnedXp:
		m.ResetTotalEarnedXp()
		return nil
	case profile.FieldStreak:
		m.ResetStreak()
		return nil
	case profile.FieldCompletedModules:
		m.ResetCompletedModules()
		return nil
	case profile.FieldExercisesCompleted:
		m.ResetExercisesCompleted()
		return nil
	case profile.FieldWeekStart:
		m.ResetWeekStart()
		return nil
	case profile.FieldLastActive:
		m.ResetLastActive()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Profile edge %s", name)
}

// TaskCompletionMutation represents an operation that mutates the TaskCompletion nodes in the graph.
type TaskCompletionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	category      *string
	task_id       *string
	xp_reward     *int
	addxp_reward  *int
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TaskCompletion, error)
	predicates    []predicate.TaskCompletion
}

var _ ent.Mutation = (*TaskCompletionMutation)(nil)

// taskcompletionOption allows management of the mutation configuration using functional options.
type taskcompletionOption func(*TaskCompletionMutation)

// newTaskCompletionMutation creates new mutation for the TaskCompletion entity.
func newTaskCompletionMutation(c config, op Op, opts ...taskcompletionOption) *TaskCompletionMutation {
	m := &TaskCompletionMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskCompletion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskCompletionID sets the ID field of the mutation.
func withTaskCompletionID(id int) taskcompletionOption {
	return func(m *TaskCompletionMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskCompletion
		)
		m.oldValue = func(ctx context.Context) (*TaskCompletion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskCompletion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskCompletion sets the old TaskCompletion of the mutation.
func withTaskCompletion(node *TaskCompletion) taskcompletionOption {
	return func(m *TaskCompletionMutation) {
		m.oldValue = func(context.Context) (*TaskCompletion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskCompletionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskCompletionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskCompletionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskCompletionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskCompletion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TaskCompletionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskCompletionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TaskCompletion entity.
// If the TaskCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskCompletionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskCompletionMutation) ResetUserID() {
	m.user_id = nil
}

// SetCategory sets the "category" field.
func (m *TaskCompletionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TaskCompletionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the TaskCompletion entity.
// If the TaskCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskCompletionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *TaskCompletionMutation) ResetCategory() {
	m.category = nil
}

// SetTaskID sets the "task_id" field.
func (m *TaskCompletionMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskCompletionMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskCompletion entity.
// If the TaskCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskCompletionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskCompletionMutation) ResetTaskID() {
	m.task_id = nil
}

// SetXpReward sets the "xp_reward" field.
func (m *TaskCompletionMutation) SetXpReward(i int) {
	m.xp_reward = &i
	m.addxp_reward = nil
}

// XpReward returns the value of the "xp_reward" field in the mutation.
func (m *TaskCompletionMutation) XpReward() (r int, exists bool) {
	v := m.xp_reward
	if v == nil {
		return
	}
	return *v, true
}

// OldXpReward returns the old "xp_reward" field's value of the TaskCompletion entity.
// If the TaskCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskCompletionMutation) OldXpReward(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpReward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpReward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpReward: %w", err)
	}
	return oldValue.XpReward, nil
}

// AddXpReward adds i to the "xp_reward" field.
func (m *TaskCompletionMutation) AddXpReward(i int) {
	if m.addxp_reward != nil {
		*m.addxp_reward += i
	} else {
		m.addxp_reward = &i
	}
}

// AddedXpReward returns the value that was added to the "xp_reward" field in this mutation.
func (m *TaskCompletionMutation) AddedXpReward() (r int, exists bool) {
	v := m.addxp_reward
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpReward resets all changes to the "xp_reward" field.
func (m *TaskCompletionMutation) ResetXpReward() {
	m.xp_reward = nil
	m.addxp_reward = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskCompletionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskCompletionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TaskCompletion entity.
// If the TaskCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskCompletionMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskCompletionMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the TaskCompletionMutation builder.
func (m *TaskCompletionMutation) Where(ps ...predicate.TaskCompletion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskCompletionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskCompletionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskCompletion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskCompletionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskCompletionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskCompletion).
func (m *TaskCompletionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskCompletionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, taskcompletion.FieldUserID)
	}
	if m.category != nil {
		fields = append(fields, taskcompletion.FieldCategory)
	}
	if m.task_id != nil {
		fields = append(fields, taskcompletion.FieldTaskID)
	}
	if m.xp_reward != nil {
		fields = append(fields, taskcompletion.FieldXpReward)
	}
	if m.completed_at != nil {
		fields = append(fields, taskcompletion.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskCompletionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskcompletion.FieldUserID:
		return m.UserID()
	case taskcompletion.FieldCategory:
		return m.Category()
	case taskcompletion.FieldTaskID:
		return m.TaskID()
	case taskcompletion.FieldXpReward:
		return m.XpReward()
	case taskcompletion.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskCompletionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskcompletion.FieldUserID:
		return m.OldUserID(ctx)
	case taskcompletion.FieldCategory:
		return m.OldCategory(ctx)
	case taskcompletion.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskcompletion.FieldXpReward:
		return m.OldXpReward(ctx)
	case taskcompletion.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskCompletion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskCompletionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskcompletion.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case taskcompletion.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case taskcompletion.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskcompletion.FieldXpReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpReward(v)
		return nil
	case taskcompletion.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskCompletion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskCompletionMutation) AddedFields() []string {
	var fields []string
	if m.addxp_reward != nil {
		fields = append(fields, taskcompletion.FieldXpReward)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskCompletionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskcompletion.FieldXpReward:
		return m.AddedXpReward()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskCompletionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskcompletion.FieldXpReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpReward(v)
		return nil
	}
	return fmt.Errorf("unknown TaskCompletion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskCompletionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskCompletionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskCompletionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskCompletion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskCompletionMutation) ResetField(name string) error {
	switch name {
	case taskcompletion.FieldUserID:
		m.ResetUserID()
		return nil
	case taskcompletion.FieldCategory:
		m.ResetCategory()
		return nil
	case taskcompletion.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskcompletion.FieldXpReward:
		m.ResetXpReward()
		return nil
	case taskcompletion.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskCompletion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskCompletionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskCompletionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskCompletionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskCompletionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskCompletionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskCompletionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskCompletionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskCompletion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskCompletionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskCompletion edge %s", name)
}

// XPEventMutation represents an operation that mutates the XPEvent nodes in the graph.
type XPEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	user_id       *string
	source        *string
	amount        *int
	addamount     *int
	category      *string
	ref_id        *string
	session_id    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*XPEvent, error)
	predicates    []predicate.XPEvent
}

var _ ent.Mutation = (*XPEventMutation)(nil)

// xpeventOption allows management of the mutation configuration using functional options.
type xpeventOption func(*XPEventMutation)

// newXPEventMutation creates new mutation for the XPEvent entity.
func newXPEventMutation(c config, op Op, opts ...xpeventOption) *XPEventMutation {
	m := &XPEventMutation{
		config:        c,
		op:            op,
		typ:           TypeXPEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withXPEventID sets the ID field of the mutation.
func withXPEventID(id int) xpeventOption {
	return func(m *XPEventMutation) {
		var (
			err   error
			once  sync.Once
			value *XPEvent
		)
		m.oldValue = func(ctx context.Context) (*XPEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().XPEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withXPEvent sets the old XPEvent of the mutation.
func withXPEvent(node *XPEvent) xpeventOption {
	return func(m *XPEventMutation) {
		m.oldValue = func(context.Context) (*XPEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m XPEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m XPEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *XPEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *XPEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().XPEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *XPEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *XPEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *XPEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *XPEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *XPEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *XPEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *XPEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *XPEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *XPEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *XPEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *XPEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSource sets the "source" field.
func (m *XPEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *XPEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *XPEventMutation) ResetSource() {
	m.source = nil
}

// SetAmount sets the "amount" field.
func (m *XPEventMutation) SetAmount(i int) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *XPEventMutation) Amount() (r int, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *XPEventMutation) AddAmount(i int) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *XPEventMutation) AddedAmount() (r int, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *XPEventMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCategory sets the "category" field.
func (m *XPEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *XPEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *XPEventMutation) ResetCategory() {
	m.category = nil
}

// SetRefID sets the "ref_id" field.
func (m *XPEventMutation) SetRefID(s string) {
	m.ref_id = &s
}

// RefID returns the value of the "ref_id" field in the mutation.
func (m *XPEventMutation) RefID() (r string, exists bool) {
	v := m.ref_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRefID returns the old "ref_id" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldRefID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefID: %w", err)
	}
	return oldValue.RefID, nil
}

// ResetRefID resets all changes to the "ref_id" field.
func (m *XPEventMutation) ResetRefID() {
	m.ref_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *XPEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *XPEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *XPEventMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the XPEventMutation builder.
func (m *XPEventMutation) Where(ps ...predicate.XPEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the XPEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *XPEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.XPEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *XPEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *XPEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (XPEvent).
func (m *XPEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *XPEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, xpevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, xpevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, xpevent.FieldUserID)
	}
	if m.source != nil {
		fields = append(fields, xpevent.FieldSource)
	}
	if m.amount != nil {
		fields = append(fields, xpevent.FieldAmount)
	}
	if m.category != nil {
		fields = append(fields, xpevent.FieldCategory)
	}
	if m.ref_id != nil {
		fields = append(fields, xpevent.FieldRefID)
	}
	if m.session_id != nil {
		fields = append(fields, xpevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *XPEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case xpevent.FieldSequence:
		return m.Sequence()
	case xpevent.FieldTimestamp:
		return m.Timestamp()
	case xpevent.FieldUserID:
		return m.UserID()
	case xpevent.FieldSource:
		return m.Source()
	case xpevent.FieldAmount:
		return m.Amount()
	case xpevent.FieldCategory:
		return m.Category()
	case xpevent.FieldRefID:
		return m.RefID()
	case xpevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *XPEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case xpevent.FieldSequence:
		return m.OldSequence(ctx)
	case xpevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case xpevent.FieldUserID:
		return m.OldUserID(ctx)
	case xpevent.FieldSource:
		return m.OldSource(ctx)
	case xpevent.FieldAmount:
		return m.OldAmount(ctx)
	case xpevent.FieldCategory:
		return m.OldCategory(ctx)
	case xpevent.FieldRefID:
		return m.OldRefID(ctx)
	case xpevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown XPEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *XPEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case xpevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case xpevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case xpevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case xpevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case xpevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case xpevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case xpevent.FieldRefID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefID(v)
		return nil
	case xpevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown XPEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *XPEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, xpevent.FieldSequence)
	}
	if m.addamount != nil {
		fields = append(fields, xpevent.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *XPEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case xpevent.FieldSequence:
		return m.AddedSequence()
	case xpevent.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *XPEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case xpevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case xpevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown XPEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *XPEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *XPEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *XPEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown XPEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *XPEventMutation) ResetField(name string) error {
	switch name {
	case xpevent.FieldSequence:
		m.ResetSequence()
		return nil
	case xpevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case xpevent.FieldUserID:
		m.ResetUserID()
		return nil
	case xpevent.FieldSource:
		m.ResetSource()
		return nil
	case xpevent.FieldAmount:
		m.ResetAmount()
		return nil
	case xpevent.FieldCategory:
		m.ResetCategory()
		return nil
	case xpevent.FieldRefID:
		m.ResetRefID()
		return nil
	case xpevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown XPEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *XPEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *XPEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *XPEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *XPEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *XPEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *XPEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *XPEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown XPEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *XPEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown XPEvent edge %s", name)
}
