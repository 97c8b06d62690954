package stats

import (
	"sync"
	"time"
)

// UserStats is a read-only snapshot of the learner's headline numbers.
// TotalEarnedXP counts only bonus XP granted through AwardXP and is always
// a subset of XP.
type UserStats struct {
	Level            int
	XP               int
	Streak           int
	CompletedModules int
	TotalEarnedXP    int
}

// Aggregator is the single mutation target for all XP-awarding events.
// Base XP is seeded once at construction; everything that flows through
// AwardXP afterwards counts as earned bonus XP. Safe for concurrent use.
type Aggregator struct {
	mu               sync.Mutex
	xp               int
	totalEarned      int
	streak           int
	completedModules int
	lastActive       time.Time
}

// DefaultStats returns the seed profile for a fresh learner.
func DefaultStats() UserStats {
	return UserStats{
		XP:               2847,
		Streak:           7,
		CompletedModules: 23,
	}
}

// NewAggregator creates an aggregator seeded from a stats snapshot.
// lastActive is the day the learner was last seen; pass the zero time when
// unknown.
func NewAggregator(seed UserStats, lastActive time.Time) *Aggregator {
	earned := seed.TotalEarnedXP
	if earned > seed.XP {
		earned = seed.XP
	}
	return &Aggregator{
		xp:               seed.XP,
		totalEarned:      earned,
		streak:           seed.Streak,
		completedModules: seed.CompletedModules,
		lastActive:       lastActive,
	}
}

// AwardXP adds amount to both cumulative XP and the earned-bonus total.
// Non-positive amounts are no-ops.
func (a *Aggregator) AwardXP(amount int) {
	if amount <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.xp += amount
	a.totalEarned += amount
}

// CompleteModule increments the completed learning module count.
func (a *Aggregator) CompleteModule() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.completedModules++
}

// Stats returns the current snapshot. Level is derived from XP.
func (a *Aggregator) Stats() UserStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return UserStats{
		Level:            LevelForXP(a.xp),
		XP:               a.xp,
		Streak:           a.streak,
		CompletedModules: a.completedModules,
		TotalEarnedXP:    a.totalEarned,
	}
}

// LastActive returns the day the learner was last seen.
func (a *Aggregator) LastActive() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastActive
}
