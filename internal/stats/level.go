package stats

// XPPerLevel is the cumulative XP required per level step.
const XPPerLevel = 250

// LevelForXP derives the display level from cumulative XP.
// Levels start at 1 and advance every XPPerLevel points.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return 1 + xp/XPPerLevel
}

// XPIntoLevel returns how far into the current level the learner is.
func XPIntoLevel(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % XPPerLevel
}

// Badge is the rank label shown next to a learner on the leaderboard.
type Badge string

const (
	BadgeBeginner     Badge = "Beginner"
	BadgeIntermediate Badge = "Intermediate"
	BadgeAdvanced     Badge = "Advanced"
	BadgeExpert       Badge = "Expert"
)

// BadgeForLevel maps a level to its rank badge.
func BadgeForLevel(level int) Badge {
	switch {
	case level >= 28:
		return BadgeExpert
	case level >= 25:
		return BadgeAdvanced
	case level >= 20:
		return BadgeIntermediate
	default:
		return BadgeBeginner
	}
}
