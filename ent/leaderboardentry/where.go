// Code generated by ent, DO NOT EDIT.

package leaderboardentry

import (
	"entgo.io/ent/dialect/sql"
	"github.com/asengupta/cyberquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldName, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldXp, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldLevel, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldStreak, v))
}

// Badge applies equality check predicate on the "badge" field. It's identical to BadgeEQ.
func Badge(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldBadge, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldContainsFold(FieldName, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldXp, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldLevel, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldStreak, v))
}

// BadgeEQ applies the EQ predicate on the "badge" field.
func BadgeEQ(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldBadge, v))
}

// BadgeNEQ applies the NEQ predicate on the "badge" field.
func BadgeNEQ(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldBadge, v))
}

// BadgeIn applies the In predicate on the "badge" field.
func BadgeIn(vs ...string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldBadge, vs...))
}

// BadgeNotIn applies the NotIn predicate on the "badge" field.
func BadgeNotIn(vs ...string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldBadge, vs...))
}

// BadgeGT applies the GT predicate on the "badge" field.
func BadgeGT(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldBadge, v))
}

// BadgeGTE applies the GTE predicate on the "badge" field.
func BadgeGTE(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldBadge, v))
}

// BadgeLT applies the LT predicate on the "badge" field.
func BadgeLT(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldBadge, v))
}

// BadgeLTE applies the LTE predicate on the "badge" field.
func BadgeLTE(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldBadge, v))
}

// BadgeContains applies the Contains predicate on the "badge" field.
func BadgeContains(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldContains(FieldBadge, v))
}

// BadgeHasPrefix applies the HasPrefix predicate on the "badge" field.
func BadgeHasPrefix(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldHasPrefix(FieldBadge, v))
}

// BadgeHasSuffix applies the HasSuffix predicate on the "badge" field.
func BadgeHasSuffix(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldHasSuffix(FieldBadge, v))
}

// BadgeEqualFold applies the EqualFold predicate on the "badge" field.
func BadgeEqualFold(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEqualFold(FieldBadge, v))
}

// BadgeContainsFold applies the ContainsFold predicate on the "badge" field.
func BadgeContainsFold(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldContainsFold(FieldBadge, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeaderboardEntry) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeaderboardEntry) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeaderboardEntry) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.NotPredicates(p))
}
