package catalog

// DefaultTaskXP is the reward applied when a task ID is missing from the
// reward table. Unknown IDs never fail a completion.
const DefaultTaskXP = 100

// Exercises returns the ordered threat detection exercise catalog.
func Exercises() []Exercise {
	return c.exercises
}

// ExerciseCount returns the catalog length.
func ExerciseCount() int {
	return len(c.exercises)
}

// ExerciseAt returns the exercise at index i, or false if out of range.
func ExerciseAt(i int) (Exercise, bool) {
	if i < 0 || i >= len(c.exercises) {
		return Exercise{}, false
	}
	return c.exercises[i], true
}

// Challenges returns the default weekly challenge definitions in catalog order.
func Challenges() []ChallengeDef {
	return c.challenges
}

// ChallengesFor returns the weekly challenges for a category in catalog order.
func ChallengesFor(cat Category) []ChallengeDef {
	return c.challengesByCategory[cat]
}

// Tracks returns all challenge tracks in catalog order.
func Tracks() []Track {
	return c.tracks
}

// TrackFor returns the track for a category, or nil if the category has no
// track (threat detection progresses through exercises, not tasks).
func TrackFor(cat Category) *Track {
	return c.tracksByCategory[cat]
}

// TaskReward returns the fixed XP reward for a task ID, falling back to
// DefaultTaskXP for unknown IDs. The second return reports whether the ID
// was found in the reward table.
func TaskReward(taskID string) (int, bool) {
	if xp, ok := c.rewardByTaskID[taskID]; ok {
		return xp, true
	}
	return DefaultTaskXP, false
}

// TaskCategory returns the category a task belongs to, or false for unknown IDs.
func TaskCategory(taskID string) (Category, bool) {
	cat, ok := c.taskCategory[taskID]
	return cat, ok
}

// Modules returns the learning path modules in order.
func Modules() []Module {
	return c.modules
}
