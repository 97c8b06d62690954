// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// FieldTotalEarnedXp holds the string denoting the total_earned_xp field in the database.
	FieldTotalEarnedXp = "total_earned_xp"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldCompletedModules holds the string denoting the completed_modules field in the database.
	FieldCompletedModules = "completed_modules"
	// FieldExercisesCompleted holds the string denoting the exercises_completed field in the database.
	FieldExercisesCompleted = "exercises_completed"
	// FieldWeekStart holds the string denoting the week_start field in the database.
	FieldWeekStart = "week_start"
	// FieldLastActive holds the string denoting the last_active field in the database.
	FieldLastActive = "last_active"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldXp,
	FieldTotalEarnedXp,
	FieldStreak,
	FieldCompletedModules,
	FieldExercisesCompleted,
	FieldWeekStart,
	FieldLastActive,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultXp holds the default value on creation for the "xp" field.
	DefaultXp int
	// XpValidator is a validator for the "xp" field. It is called by the builders before save.
	XpValidator func(int) error
	// DefaultTotalEarnedXp holds the default value on creation for the "total_earned_xp" field.
	DefaultTotalEarnedXp int
	// TotalEarnedXpValidator is a validator for the "total_earned_xp" field. It is called by the builders before save.
	TotalEarnedXpValidator func(int) error
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	StreakValidator func(int) error
	// DefaultCompletedModules holds the default value on creation for the "completed_modules" field.
	DefaultCompletedModules int
	// CompletedModulesValidator is a validator for the "completed_modules" field. It is called by the builders before save.
	CompletedModulesValidator func(int) error
	// DefaultExercisesCompleted holds the default value on creation for the "exercises_completed" field.
	DefaultExercisesCompleted int
	// ExercisesCompletedValidator is a validator for the "exercises_completed" field. It is called by the builders before save.
	ExercisesCompletedValidator func(int) error
	// DefaultWeekStart holds the default value on creation for the "week_start" field.
	DefaultWeekStart func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}

// ByTotalEarnedXp orders the results by the total_earned_xp field.
func ByTotalEarnedXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEarnedXp, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByCompletedModules orders the results by the completed_modules field.
func ByCompletedModules(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedModules, opts...).ToFunc()
}

// ByExercisesCompleted orders the results by the exercises_completed field.
func ByExercisesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExercisesCompleted, opts...).ToFunc()
}

// ByWeekStart orders the results by the week_start field.
func ByWeekStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekStart, opts...).ToFunc()
}

// ByLastActive orders the results by the last_active field.
func ByLastActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActive, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
