package engine

import (
	"time"

	"github.com/asengupta/cyberquest/internal/catalog"
	"github.com/asengupta/cyberquest/internal/challenges"
	"github.com/asengupta/cyberquest/internal/stats"
)

// Seed carries the persisted state an engine hydrates from. The zero value
// (or nil) means a brand-new learner.
type Seed struct {
	Stats      stats.UserStats
	LastActive time.Time

	// ExercisesCompleted and WeekStart describe the persisted exercise
	// cursor and the week it belongs to.
	ExercisesCompleted int
	WeekStart          time.Time

	// Challenges holds persisted weekly challenge rows.
	Challenges []ChallengeRow

	// Tasks holds completed task IDs per category.
	Tasks map[catalog.Category][]string
}

// ChallengeRow is a persisted weekly challenge state.
type ChallengeRow struct {
	ID        string
	Current   int
	WeekStart time.Time
}

// ProfileState is the profile record the mirror writes through.
type ProfileState struct {
	Stats              stats.UserStats
	LastActive         time.Time
	ExercisesCompleted int
	WeekStart          time.Time
}

// XPSource identifies why XP was granted.
type XPSource string

const (
	// SourceTask is XP for completing a track task.
	SourceTask XPSource = "task"
	// SourceChallengeBonus is the one-time weekly challenge completion bonus.
	SourceChallengeBonus XPSource = "challenge-bonus"
)

// XPEvent is one granted award, recorded for history.
type XPEvent struct {
	Source    XPSource
	Amount    int
	Category  catalog.Category
	RefID     string // task ID or challenge ID
	SessionID string
	At        time.Time
}

// Mirror is the engine's write-through persistence hook. Implementations
// must not block: writes are queued and applied in call order. A nil mirror
// (anonymous session) disables persistence entirely.
type Mirror interface {
	SaveProfile(p ProfileState)
	SaveChallenge(ch challenges.Challenge)
	SaveTask(cat catalog.Category, taskID string, xpReward int)
	AppendXP(ev XPEvent)
}
