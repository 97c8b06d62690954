// Code generated by ent, DO NOT EDIT.

package leaderboardentry

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the leaderboardentry type in the database.
	Label = "leaderboard_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldBadge holds the string denoting the badge field in the database.
	FieldBadge = "badge"
	// Table holds the table name of the leaderboardentry in the database.
	Table = "leaderboard_entries"
)

// Columns holds all SQL columns for leaderboardentry fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldXp,
	FieldLevel,
	FieldStreak,
	FieldBadge,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultXp holds the default value on creation for the "xp" field.
	DefaultXp int
	// XpValidator is a validator for the "xp" field. It is called by the builders before save.
	XpValidator func(int) error
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(int) error
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	StreakValidator func(int) error
	// BadgeValidator is a validator for the "badge" field. It is called by the builders before save.
	BadgeValidator func(string) error
)

// OrderOption defines the ordering options for the LeaderboardEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByBadge orders the results by the badge field.
func ByBadge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadge, opts...).ToFunc()
}
