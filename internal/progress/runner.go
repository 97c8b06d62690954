package progress

// Runner walks a fixed ordered exercise catalog with a single cursor.
// Exercises are presented strictly in catalog order: no skipping, and no
// repeats once completed. Runner is not safe for concurrent use on its own;
// the owning engine serializes access.
type Runner struct {
	catalogLen int
	completed  int
	active     int // index of the open exercise, -1 when none
}

// State is a read-only snapshot of the runner.
type State struct {
	CompletedCount int
	ActiveIndex    int // -1 when no exercise is open
}

// CompleteResult describes the outcome of CompleteExercise.
type CompleteResult struct {
	// CompletedCount is the count after the completion.
	CompletedCount int
	// SequenceDone is true exactly when this completion finished the full
	// catalog pass.
	SequenceDone bool
}

// NewRunner creates a runner over a catalog of catalogLen exercises, resuming
// from a previously completed count. The count is clamped to the catalog
// bounds so a stale persisted value can never break the order invariant.
func NewRunner(catalogLen, completed int) *Runner {
	if completed < 0 {
		completed = 0
	}
	if completed > catalogLen {
		completed = catalogLen
	}
	return &Runner{
		catalogLen: catalogLen,
		completed:  completed,
		active:     -1,
	}
}

// ContinueChallenge opens the next uncompleted exercise. Returns false when
// the sequence is already exhausted (idempotent no-op at the end).
func (r *Runner) ContinueChallenge() bool {
	if r.completed >= r.catalogLen {
		return false
	}
	r.active = r.completed
	return true
}

// CompleteExercise finishes the open exercise, advancing the cursor. The
// second return is false when no exercise is active (benign no-op).
func (r *Runner) CompleteExercise() (CompleteResult, bool) {
	if r.active < 0 {
		return CompleteResult{}, false
	}

	r.completed++
	if r.completed < r.catalogLen {
		r.active = r.completed
	} else {
		r.active = -1
	}

	return CompleteResult{
		CompletedCount: r.completed,
		SequenceDone:   r.completed == r.catalogLen,
	}, true
}

// Back abandons the open exercise without losing progress. The exercise can
// be reopened later with ContinueChallenge.
func (r *Runner) Back() {
	r.active = -1
}

// Restart resets the sequence to the beginning for another practice pass.
// Previously awarded XP is not revoked.
func (r *Runner) Restart() {
	r.completed = 0
	r.active = -1
}

// CompletedCount returns the number of finished exercises.
func (r *Runner) CompletedCount() int {
	return r.completed
}

// Active returns the index of the open exercise, or false if none.
func (r *Runner) Active() (int, bool) {
	if r.active < 0 {
		return 0, false
	}
	return r.active, true
}

// Done reports whether the full catalog has been completed.
func (r *Runner) Done() bool {
	return r.completed >= r.catalogLen
}

// State returns a snapshot of the runner.
func (r *Runner) State() State {
	return State{CompletedCount: r.completed, ActiveIndex: r.active}
}
