package catalog

// Exercise is a single scenario-based micro-exercise in the threat detection
// sequence. The catalog is immutable; only the learner's position and
// completion count are stateful.
type Exercise struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Scenario string `json:"scenario"`
	Answer   string `json:"answer"`
}

// ChallengeDef defines a weekly challenge: complete Target category events to
// earn a one-time XPReward bonus.
type ChallengeDef struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Target      int      `json:"target"`
	XPReward    int      `json:"xpReward"`
}

// Difficulty labels a task for display.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Task is a single unit of work inside a challenge track, finer-grained than
// a whole weekly challenge.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	XPReward    int        `json:"xpReward"`
}

// Track groups the tasks for one challenge category.
type Track struct {
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tasks       []Task   `json:"tasks"`
}

// TotalXP returns the sum of all task rewards in the track.
func (t Track) TotalXP() int {
	sum := 0
	for _, task := range t.Tasks {
		sum += task.XPReward
	}
	return sum
}

// Module is one entry in the learning path.
type Module struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
}
