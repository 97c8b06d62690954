// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChallengeState is the predicate function for challengestate builders.
type ChallengeState func(*sql.Selector)

// LeaderboardEntry is the predicate function for leaderboardentry builders.
type LeaderboardEntry func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// TaskCompletion is the predicate function for taskcompletion builders.
type TaskCompletion func(*sql.Selector)

// XPEvent is the predicate function for xpevent builders.
type XPEvent func(*sql.Selector)
