package challenges

import (
	"time"

	"github.com/asengupta/cyberquest/internal/catalog"
)

// Challenge is the runtime state of one weekly challenge.
type Challenge struct {
	catalog.ChallengeDef
	Current   int
	Completed bool
	WeekStart time.Time
}

// Ratio returns completion progress in [0, 1] for display.
func (c Challenge) Ratio() float64 {
	if c.Target <= 0 {
		return 0
	}
	return float64(c.Current) / float64(c.Target)
}

// Completion is emitted exactly once when a challenge reaches its target.
type Completion struct {
	ChallengeID string
	Category    catalog.Category
	Title       string
	XPReward    int
}

// Tracker maintains the weekly challenge set. Progress only moves forward;
// the week boundary is handled at load time by re-issuing fresh challenges.
// Tracker is not safe for concurrent use on its own; the owning engine
// serializes access.
type Tracker struct {
	challenges []*Challenge
	byCategory map[catalog.Category][]*Challenge
}

// NewTracker builds a fresh tracker from challenge definitions for the week
// starting at weekStart.
func NewTracker(defs []catalog.ChallengeDef, weekStart time.Time) *Tracker {
	t := &Tracker{
		byCategory: make(map[catalog.Category][]*Challenge),
	}
	for _, def := range defs {
		ch := &Challenge{ChallengeDef: def, WeekStart: weekStart}
		t.challenges = append(t.challenges, ch)
		t.byCategory[def.Category] = append(t.byCategory[def.Category], ch)
	}
	return t
}

// Restore applies a persisted progress count to a challenge by ID. The value
// is clamped to [0, target]; completion state is derived, so a restored
// challenge at target never re-emits its completion event.
func (t *Tracker) Restore(challengeID string, current int) {
	for _, ch := range t.challenges {
		if ch.ID != challengeID {
			continue
		}
		if current < 0 {
			current = 0
		}
		if current > ch.Target {
			current = ch.Target
		}
		ch.Current = current
		ch.Completed = current == ch.Target
		return
	}
}

// Advance increments the first incomplete challenge in the category by one.
// The increment and the completion check are a single step, so a completion
// can never be observed twice. Returns the completion event when this call
// reached the target, and false when every challenge in the category is
// already complete (benign no-op).
func (t *Tracker) Advance(cat catalog.Category) (*Completion, bool) {
	for _, ch := range t.byCategory[cat] {
		if ch.Current >= ch.Target {
			continue
		}
		ch.Current++
		if ch.Current == ch.Target {
			ch.Completed = true
			return &Completion{
				ChallengeID: ch.ID,
				Category:    ch.Category,
				Title:       ch.Title,
				XPReward:    ch.XPReward,
			}, true
		}
		return nil, true
	}
	return nil, false
}

// Challenges returns a snapshot of all challenges in catalog order.
func (t *Tracker) Challenges() []Challenge {
	out := make([]Challenge, len(t.challenges))
	for i, ch := range t.challenges {
		out[i] = *ch
	}
	return out
}

// Progress returns current and target for the first incomplete challenge in
// the category, or the last one when every challenge is complete. A category
// with no challenge reports (0, 0).
func (t *Tracker) Progress(cat catalog.Category) (current, target int) {
	list := t.byCategory[cat]
	if len(list) == 0 {
		return 0, 0
	}
	for _, ch := range list {
		if ch.Current < ch.Target {
			return ch.Current, ch.Target
		}
	}
	last := list[len(list)-1]
	return last.Current, last.Target
}
