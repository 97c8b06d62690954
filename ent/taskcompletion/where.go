// Code generated by ent, DO NOT EDIT.

package taskcompletion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/asengupta/cyberquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldUserID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldCategory, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldTaskID, v))
}

// XpReward applies equality check predicate on the "xp_reward" field. It's identical to XpRewardEQ.
func XpReward(v int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldXpReward, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldContainsFold(FieldUserID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldContainsFold(FieldCategory, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldContainsFold(FieldTaskID, v))
}

// XpRewardEQ applies the EQ predicate on the "xp_reward" field.
func XpRewardEQ(v int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldXpReward, v))
}

// XpRewardNEQ applies the NEQ predicate on the "xp_reward" field.
func XpRewardNEQ(v int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNEQ(FieldXpReward, v))
}

// XpRewardIn applies the In predicate on the "xp_reward" field.
func XpRewardIn(vs ...int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldIn(FieldXpReward, vs...))
}

// XpRewardNotIn applies the NotIn predicate on the "xp_reward" field.
func XpRewardNotIn(vs ...int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNotIn(FieldXpReward, vs...))
}

// XpRewardGT applies the GT predicate on the "xp_reward" field.
func XpRewardGT(v int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGT(FieldXpReward, v))
}

// XpRewardGTE applies the GTE predicate on the "xp_reward" field.
func XpRewardGTE(v int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGTE(FieldXpReward, v))
}

// XpRewardLT applies the LT predicate on the "xp_reward" field.
func XpRewardLT(v int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLT(FieldXpReward, v))
}

// XpRewardLTE applies the LTE predicate on the "xp_reward" field.
func XpRewardLTE(v int) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLTE(FieldXpReward, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskCompletion) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskCompletion) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskCompletion) predicate.TaskCompletion {
	return predicate.TaskCompletion(sql.NotPredicates(p))
}
