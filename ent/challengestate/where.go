// Code generated by ent, DO NOT EDIT.

package challengestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/asengupta/cyberquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldUserID, v))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldChallengeID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldCategory, v))
}

// Current applies equality check predicate on the "current" field. It's identical to CurrentEQ.
func Current(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldCurrent, v))
}

// Target applies equality check predicate on the "target" field. It's identical to TargetEQ.
func Target(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldTarget, v))
}

// XpReward applies equality check predicate on the "xp_reward" field. It's identical to XpRewardEQ.
func XpReward(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldXpReward, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldCompleted, v))
}

// WeekStart applies equality check predicate on the "week_start" field. It's identical to WeekStartEQ.
func WeekStart(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldWeekStart, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldContainsFold(FieldUserID, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldContainsFold(FieldChallengeID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldContainsFold(FieldCategory, v))
}

// CurrentEQ applies the EQ predicate on the "current" field.
func CurrentEQ(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldCurrent, v))
}

// CurrentNEQ applies the NEQ predicate on the "current" field.
func CurrentNEQ(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldCurrent, v))
}

// CurrentIn applies the In predicate on the "current" field.
func CurrentIn(vs ...int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldIn(FieldCurrent, vs...))
}

// CurrentNotIn applies the NotIn predicate on the "current" field.
func CurrentNotIn(vs ...int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNotIn(FieldCurrent, vs...))
}

// CurrentGT applies the GT predicate on the "current" field.
func CurrentGT(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGT(FieldCurrent, v))
}

// CurrentGTE applies the GTE predicate on the "current" field.
func CurrentGTE(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGTE(FieldCurrent, v))
}

// CurrentLT applies the LT predicate on the "current" field.
func CurrentLT(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLT(FieldCurrent, v))
}

// CurrentLTE applies the LTE predicate on the "current" field.
func CurrentLTE(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLTE(FieldCurrent, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNotIn(FieldTarget, vs...))
}

// TargetGT applies the GT predicate on the "target" field.
func TargetGT(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGT(FieldTarget, v))
}

// TargetGTE applies the GTE predicate on the "target" field.
func TargetGTE(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGTE(FieldTarget, v))
}

// TargetLT applies the LT predicate on the "target" field.
func TargetLT(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLT(FieldTarget, v))
}

// TargetLTE applies the LTE predicate on the "target" field.
func TargetLTE(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLTE(FieldTarget, v))
}

// XpRewardEQ applies the EQ predicate on the "xp_reward" field.
func XpRewardEQ(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldXpReward, v))
}

// XpRewardNEQ applies the NEQ predicate on the "xp_reward" field.
func XpRewardNEQ(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldXpReward, v))
}

// XpRewardIn applies the In predicate on the "xp_reward" field.
func XpRewardIn(vs ...int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldIn(FieldXpReward, vs...))
}

// XpRewardNotIn applies the NotIn predicate on the "xp_reward" field.
func XpRewardNotIn(vs ...int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNotIn(FieldXpReward, vs...))
}

// XpRewardGT applies the GT predicate on the "xp_reward" field.
func XpRewardGT(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGT(FieldXpReward, v))
}

// XpRewardGTE applies the GTE predicate on the "xp_reward" field.
func XpRewardGTE(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGTE(FieldXpReward, v))
}

// XpRewardLT applies the LT predicate on the "xp_reward" field.
func XpRewardLT(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLT(FieldXpReward, v))
}

// XpRewardLTE applies the LTE predicate on the "xp_reward" field.
func XpRewardLTE(v int) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLTE(FieldXpReward, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldCompleted, v))
}

// WeekStartEQ applies the EQ predicate on the "week_start" field.
func WeekStartEQ(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldWeekStart, v))
}

// WeekStartNEQ applies the NEQ predicate on the "week_start" field.
func WeekStartNEQ(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldWeekStart, v))
}

// WeekStartIn applies the In predicate on the "week_start" field.
func WeekStartIn(vs ...time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldIn(FieldWeekStart, vs...))
}

// WeekStartNotIn applies the NotIn predicate on the "week_start" field.
func WeekStartNotIn(vs ...time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNotIn(FieldWeekStart, vs...))
}

// WeekStartGT applies the GT predicate on the "week_start" field.
func WeekStartGT(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGT(FieldWeekStart, v))
}

// WeekStartGTE applies the GTE predicate on the "week_start" field.
func WeekStartGTE(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGTE(FieldWeekStart, v))
}

// WeekStartLT applies the LT predicate on the "week_start" field.
func WeekStartLT(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLT(FieldWeekStart, v))
}

// WeekStartLTE applies the LTE predicate on the "week_start" field.
func WeekStartLTE(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLTE(FieldWeekStart, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChallengeState {
	return predicate.ChallengeState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChallengeState) predicate.ChallengeState {
	return predicate.ChallengeState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChallengeState) predicate.ChallengeState {
	return predicate.ChallengeState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChallengeState) predicate.ChallengeState {
	return predicate.ChallengeState(sql.NotPredicates(p))
}
