// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/asengupta/cyberquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldXp, v))
}

// TotalEarnedXp applies equality check predicate on the "total_earned_xp" field. It's identical to TotalEarnedXpEQ.
func TotalEarnedXp(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalEarnedXp, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreak, v))
}

// CompletedModules applies equality check predicate on the "completed_modules" field. It's identical to CompletedModulesEQ.
func CompletedModules(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCompletedModules, v))
}

// ExercisesCompleted applies equality check predicate on the "exercises_completed" field. It's identical to ExercisesCompletedEQ.
func ExercisesCompleted(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExercisesCompleted, v))
}

// WeekStart applies equality check predicate on the "week_start" field. It's identical to WeekStartEQ.
func WeekStart(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldWeekStart, v))
}

// LastActive applies equality check predicate on the "last_active" field. It's identical to LastActiveEQ.
func LastActive(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastActive, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldUserID, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldXp, v))
}

// TotalEarnedXpEQ applies the EQ predicate on the "total_earned_xp" field.
func TotalEarnedXpEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalEarnedXp, v))
}

// TotalEarnedXpNEQ applies the NEQ predicate on the "total_earned_xp" field.
func TotalEarnedXpNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTotalEarnedXp, v))
}

// TotalEarnedXpIn applies the In predicate on the "total_earned_xp" field.
func TotalEarnedXpIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTotalEarnedXp, vs...))
}

// TotalEarnedXpNotIn applies the NotIn predicate on the "total_earned_xp" field.
func TotalEarnedXpNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTotalEarnedXp, vs...))
}

// TotalEarnedXpGT applies the GT predicate on the "total_earned_xp" field.
func TotalEarnedXpGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTotalEarnedXp, v))
}

// TotalEarnedXpGTE applies the GTE predicate on the "total_earned_xp" field.
func TotalEarnedXpGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTotalEarnedXp, v))
}

// TotalEarnedXpLT applies the LT predicate on the "total_earned_xp" field.
func TotalEarnedXpLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTotalEarnedXp, v))
}

// TotalEarnedXpLTE applies the LTE predicate on the "total_earned_xp" field.
func TotalEarnedXpLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTotalEarnedXp, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldStreak, v))
}

// CompletedModulesEQ applies the EQ predicate on the "completed_modules" field.
func CompletedModulesEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCompletedModules, v))
}

// CompletedModulesNEQ applies the NEQ predicate on the "completed_modules" field.
func CompletedModulesNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCompletedModules, v))
}

// CompletedModulesIn applies the In predicate on the "completed_modules" field.
func CompletedModulesIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCompletedModules, vs...))
}

// CompletedModulesNotIn applies the NotIn predicate on the "completed_modules" field.
func CompletedModulesNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCompletedModules, vs...))
}

// CompletedModulesGT applies the GT predicate on the "completed_modules" field.
func CompletedModulesGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCompletedModules, v))
}

// CompletedModulesGTE applies the GTE predicate on the "completed_modules" field.
func CompletedModulesGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCompletedModules, v))
}

// CompletedModulesLT applies the LT predicate on the "completed_modules" field.
func CompletedModulesLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCompletedModules, v))
}

// CompletedModulesLTE applies the LTE predicate on the "completed_modules" field.
func CompletedModulesLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCompletedModules, v))
}

// ExercisesCompletedEQ applies the EQ predicate on the "exercises_completed" field.
func ExercisesCompletedEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExercisesCompleted, v))
}

// ExercisesCompletedNEQ applies the NEQ predicate on the "exercises_completed" field.
func ExercisesCompletedNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldExercisesCompleted, v))
}

// ExercisesCompletedIn applies the In predicate on the "exercises_completed" field.
func ExercisesCompletedIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldExercisesCompleted, vs...))
}

// ExercisesCompletedNotIn applies the NotIn predicate on the "exercises_completed" field.
func ExercisesCompletedNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldExercisesCompleted, vs...))
}

// ExercisesCompletedGT applies the GT predicate on the "exercises_completed" field.
func ExercisesCompletedGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldExercisesCompleted, v))
}

// ExercisesCompletedGTE applies the GTE predicate on the "exercises_completed" field.
func ExercisesCompletedGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldExercisesCompleted, v))
}

// ExercisesCompletedLT applies the LT predicate on the "exercises_completed" field.
func ExercisesCompletedLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldExercisesCompleted, v))
}

// ExercisesCompletedLTE applies the LTE predicate on the "exercises_completed" field.
func ExercisesCompletedLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldExercisesCompleted, v))
}

// WeekStartEQ applies the EQ predicate on the "week_start" field.
func WeekStartEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldWeekStart, v))
}

// WeekStartNEQ applies the NEQ predicate on the "week_start" field.
func WeekStartNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldWeekStart, v))
}

// WeekStartIn applies the In predicate on the "week_start" field.
func WeekStartIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldWeekStart, vs...))
}

// WeekStartNotIn applies the NotIn predicate on the "week_start" field.
func WeekStartNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldWeekStart, vs...))
}

// WeekStartGT applies the GT predicate on the "week_start" field.
func WeekStartGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldWeekStart, v))
}

// WeekStartGTE applies the GTE predicate on the "week_start" field.
func WeekStartGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldWeekStart, v))
}

// WeekStartLT applies the LT predicate on the "week_start" field.
func WeekStartLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldWeekStart, v))
}

// WeekStartLTE applies the LTE predicate on the "week_start" field.
func WeekStartLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldWeekStart, v))
}

// LastActiveEQ applies the EQ predicate on the "last_active" field.
func LastActiveEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastActive, v))
}

// LastActiveNEQ applies the NEQ predicate on the "last_active" field.
func LastActiveNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLastActive, v))
}

// LastActiveIn applies the In predicate on the "last_active" field.
func LastActiveIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLastActive, vs...))
}

// LastActiveNotIn applies the NotIn predicate on the "last_active" field.
func LastActiveNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLastActive, vs...))
}

// LastActiveGT applies the GT predicate on the "last_active" field.
func LastActiveGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLastActive, v))
}

// LastActiveGTE applies the GTE predicate on the "last_active" field.
func LastActiveGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLastActive, v))
}

// LastActiveLT applies the LT predicate on the "last_active" field.
func LastActiveLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLastActive, v))
}

// LastActiveLTE applies the LTE predicate on the "last_active" field.
func LastActiveLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLastActive, v))
}

// LastActiveIsNil applies the IsNil predicate on the "last_active" field.
func LastActiveIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldLastActive))
}

// LastActiveNotNil applies the NotNil predicate on the "last_active" field.
func LastActiveNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldLastActive))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
