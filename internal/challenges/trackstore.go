package challenges

import (
	"sort"

	"github.com/asengupta/cyberquest/internal/catalog"
)

// TrackProgress maintains, per category, the set of completed task IDs.
// Set semantics make duplicate completions no-ops, so a task can never be
// double-awarded no matter how the UI calls in.
type TrackProgress struct {
	completed map[catalog.Category]map[string]bool
}

// NewTrackProgress creates an empty progress store.
func NewTrackProgress() *TrackProgress {
	return &TrackProgress{
		completed: make(map[catalog.Category]map[string]bool),
	}
}

// Restore marks a set of task IDs completed for a category, used when
// hydrating from persistence.
func (p *TrackProgress) Restore(cat catalog.Category, taskIDs []string) {
	for _, id := range taskIDs {
		p.add(cat, id)
	}
}

// Complete records a task completion. Returns false if the task was already
// complete (the caller must not award XP again).
func (p *TrackProgress) Complete(cat catalog.Category, taskID string) bool {
	if p.IsTaskComplete(cat, taskID) {
		return false
	}
	p.add(cat, taskID)
	return true
}

// IsTaskComplete reports whether the task has been completed in the category.
func (p *TrackProgress) IsTaskComplete(cat catalog.Category, taskID string) bool {
	return p.completed[cat][taskID]
}

// CompletedTasks returns the sorted completed task IDs for a category.
func (p *TrackProgress) CompletedTasks(cat catalog.Category) []string {
	set := p.completed[cat]
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CountFor returns the number of completed tasks in a category.
func (p *TrackProgress) CountFor(cat catalog.Category) int {
	return len(p.completed[cat])
}

func (p *TrackProgress) add(cat catalog.Category, taskID string) {
	set := p.completed[cat]
	if set == nil {
		set = make(map[string]bool)
		p.completed[cat] = set
	}
	set[taskID] = true
}
