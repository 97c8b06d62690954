// Code generated by ent, DO NOT EDIT.

package challengestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the challengestate type in the database.
	Label = "challenge_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCurrent holds the string denoting the current field in the database.
	FieldCurrent = "current"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldXpReward holds the string denoting the xp_reward field in the database.
	FieldXpReward = "xp_reward"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldWeekStart holds the string denoting the week_start field in the database.
	FieldWeekStart = "week_start"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the challengestate in the database.
	Table = "challenge_states"
)

// Columns holds all SQL columns for challengestate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldChallengeID,
	FieldCategory,
	FieldCurrent,
	FieldTarget,
	FieldXpReward,
	FieldCompleted,
	FieldWeekStart,
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
	// ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	ChallengeIDValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultCurrent holds the default value on creation for the "current" field.
	DefaultCurrent int
	// CurrentValidator is a validator for the "current" field. It is called by the builders before save.
	CurrentValidator func(int) error
	// TargetValidator is a validator for the "target" field. It is called by the builders before save.
	TargetValidator func(int) error
	// DefaultXpReward holds the default value on creation for the "xp_reward" field.
	DefaultXpReward int
	// XpRewardValidator is a validator for the "xp_reward" field. It is called by the builders before save.
	XpRewardValidator func(int) error
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ChallengeState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCurrent orders the results by the current field.
func ByCurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrent, opts...).ToFunc()
}

// ByTarget orders the results by the target field.
func ByTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTarget, opts...).ToFunc()
}

// ByXpReward orders the results by the xp_reward field.
func ByXpReward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpReward, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByWeekStart orders the results by the week_start field.
func ByWeekStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekStart, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
