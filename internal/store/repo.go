package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProfileRecord is the persisted learner record: XP totals, streak, and the
// weekly exercise cursor.
type ProfileRecord struct {
	UserID             string
	XP                 int
	TotalEarnedXP      int
	Streak             int
	CompletedModules   int
	ExercisesCompleted int
	WeekStart          time.Time
	LastActive         *time.Time
}

// ChallengeRecord is one persisted weekly challenge row for a user.
type ChallengeRecord struct {
	UserID      string
	ChallengeID string
	Category    string
	Current     int
	Target      int
	XPReward    int
	Completed   bool
	WeekStart   time.Time
}

// TaskRecord is one completed track task for a user.
type TaskRecord struct {
	UserID      string
	Category    string
	TaskID      string
	XPReward    int
	CompletedAt time.Time
}

// XPEventRecord is one appended XP grant in the global event log.
type XPEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	UserID    string
	Source    string
	Amount    int
	Category  string
	RefID     string
	SessionID string
}

// LeaderboardRecord is one row of the global standings.
type LeaderboardRecord struct {
	Name   string
	XP     int
	Level  int
	Streak int
	Badge  string
}

// ProfileRepo manages the per-user learner record.
type ProfileRepo interface {
	// Get returns the profile for userID, or nil if none exists.
	Get(ctx context.Context, userID string) (*ProfileRecord, error)

	// Upsert creates or replaces the profile for rec.UserID.
	Upsert(ctx context.Context, rec *ProfileRecord) error
}

// ChallengeRepo manages weekly challenge rows.
type ChallengeRepo interface {
	// List returns all challenge rows for userID, any week.
	List(ctx context.Context, userID string) ([]ChallengeRecord, error)

	// Upsert creates or replaces the row keyed by (user, challenge).
	Upsert(ctx context.Context, rec ChallengeRecord) error
}

// TaskRepo manages completed track tasks.
type TaskRepo interface {
	// List returns all task completions for userID.
	List(ctx context.Context, userID string) ([]TaskRecord, error)

	// Add records a completion. Duplicate (user, category, task) rows
	// are ignored so replayed saves stay idempotent.
	Add(ctx context.Context, rec TaskRecord) error
}

// EventRepo provides append and query access to the XP event log.
type EventRepo interface {
	// AppendXPEvent stamps the next global sequence and stores the event.
	AppendXPEvent(ctx context.Context, rec XPEventRecord) error

	// QueryXPEvents returns events for userID in sequence order.
	QueryXPEvents(ctx context.Context, userID string, opts QueryOpts) ([]XPEventRecord, error)
}

// LeaderboardRepo manages the seeded global standings.
type LeaderboardRepo interface {
	// Top returns up to limit rows ordered by XP descending.
	Top(ctx context.Context, limit int) ([]LeaderboardRecord, error)

	// Seed inserts the default standings if the table is empty.
	Seed(ctx context.Context) error
}
