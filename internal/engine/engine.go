package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asengupta/cyberquest/internal/catalog"
	"github.com/asengupta/cyberquest/internal/challenges"
	"github.com/asengupta/cyberquest/internal/progress"
	"github.com/asengupta/cyberquest/internal/stats"
)

// Engine owns the progress state for one portal session: the exercise
// runner, the weekly challenge tracker, the per-task progress sets, and the
// stats aggregator. It is the only mutation path the UI sees; every
// operation is serialized by a single mutex so multi-step awards (task XP,
// then challenge bonus) apply atomically and in a fixed order.
//
// Construct one Engine per session with New and pass it by reference. There
// is no package-level instance.
type Engine struct {
	mu        sync.Mutex
	sessionID string
	weekStart time.Time

	runner  *progress.Runner
	tracker *challenges.Tracker
	tasks   *challenges.TrackProgress
	stats   *stats.Aggregator

	mirror Mirror
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithMirror attaches a write-through persistence mirror. Without it the
// engine runs purely in memory.
func WithMirror(m Mirror) Option {
	return func(e *Engine) { e.mirror = m }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an engine hydrated from seed. A nil seed starts from the
// default profile and a fresh weekly challenge set. Persisted challenge rows
// and the exercise cursor from an earlier week are discarded so every week
// starts with a clean slate; XP and streak always carry over.
func New(seed *Seed, opts ...Option) *Engine {
	e := &Engine{
		sessionID: uuid.New().String(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	now := e.now()
	e.weekStart = challenges.WeekStartOf(now)

	if seed == nil {
		seed = &Seed{Stats: stats.DefaultStats()}
	}

	e.stats = stats.NewAggregator(seed.Stats, seed.LastActive)
	e.tracker = challenges.NewTracker(catalog.Challenges(), e.weekStart)
	e.tasks = challenges.NewTrackProgress()

	exercisesCompleted := 0
	if challenges.SameWeek(seed.WeekStart, now) {
		exercisesCompleted = seed.ExercisesCompleted
		for _, row := range seed.Challenges {
			if challenges.SameWeek(row.WeekStart, now) {
				e.tracker.Restore(row.ID, row.Current)
			}
		}
	}
	e.runner = progress.NewRunner(catalog.ExerciseCount(), exercisesCompleted)

	// Task completions are not week-scoped: a solved task stays solved.
	for cat, ids := range seed.Tasks {
		e.tasks.Restore(cat, ids)
	}

	return e
}

// SessionID returns the UUID stamped on this session's XP events.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// WeekStart returns the Monday boundary of the active challenge week.
func (e *Engine) WeekStart() time.Time {
	return e.weekStart
}

// ContinueChallenge opens the next exercise in the sequence. Returns false
// when the weekly pass is already finished.
func (e *Engine) ContinueChallenge() (catalog.Exercise, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.runner.ContinueChallenge() {
		return catalog.Exercise{}, false
	}
	idx, _ := e.runner.Active()
	ex, _ := catalog.ExerciseAt(idx)
	return ex, true
}

// ExerciseOutcome describes the result of completing one exercise.
type ExerciseOutcome struct {
	CompletedCount int
	SequenceDone   bool
	// Completion is set when this exercise finished the weekly threat
	// detection challenge.
	Completion *challenges.Completion
	// Next is the exercise now open, nil when the sequence is exhausted.
	Next *catalog.Exercise
}

// CompleteExercise finishes the open exercise and advances the threat
// detection challenge by one unit. When that advance completes the weekly
// challenge, the bonus XP is awarded here, exactly once. Returns false when
// no exercise is active.
func (e *Engine) CompleteExercise() (ExerciseOutcome, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, ok := e.runner.CompleteExercise()
	if !ok {
		return ExerciseOutcome{}, false
	}

	out := ExerciseOutcome{
		CompletedCount: res.CompletedCount,
		SequenceDone:   res.SequenceDone,
	}
	if idx, active := e.runner.Active(); active {
		if ex, found := catalog.ExerciseAt(idx); found {
			out.Next = &ex
		}
	}

	comp, _ := e.tracker.Advance(catalog.CategoryThreatDetection)
	if comp != nil {
		e.stats.AwardXP(comp.XPReward)
		out.Completion = comp
	}

	e.mirrorChallenge(catalog.CategoryThreatDetection)
	if comp != nil {
		e.mirrorXP(XPEvent{
			Source:   SourceChallengeBonus,
			Amount:   comp.XPReward,
			Category: comp.Category,
			RefID:    comp.ChallengeID,
		})
	}
	e.mirrorProfile()

	return out, true
}

// Back abandons the open exercise; progress is kept and the exercise can be
// resumed later.
func (e *Engine) Back() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runner.Back()
}

// Restart resets the exercise sequence for another practice pass. XP already
// earned is not revoked, and the weekly challenge keeps its progress.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runner.Restart()
	e.mirrorProfile()
}

// TaskOutcome describes the result of completing a track task.
type TaskOutcome struct {
	// AlreadyComplete is true when the task had been completed before; no
	// XP moves in that case.
	AlreadyComplete bool
	// TaskXP is the reward granted for the task itself.
	TaskXP int
	// KnownTask is false when the task ID was missing from the reward table
	// and the default reward was applied.
	KnownTask bool
	// Completion is set when this task finished the category's weekly
	// challenge.
	Completion *challenges.Completion
}

// CompleteTask records a task completion in a challenge track. Idempotent
// per task ID: repeats award nothing. On a first completion the task XP is
// awarded, then the category's weekly challenge advances by one, and any
// resulting completion bonus is awarded after the task XP.
func (e *Engine) CompleteTask(cat catalog.Category, taskID string) TaskOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.tasks.Complete(cat, taskID) {
		return TaskOutcome{AlreadyComplete: true}
	}

	xp, known := catalog.TaskReward(taskID)
	e.stats.AwardXP(xp)

	out := TaskOutcome{TaskXP: xp, KnownTask: known}

	comp, _ := e.tracker.Advance(cat)
	if comp != nil {
		e.stats.AwardXP(comp.XPReward)
		out.Completion = comp
	}

	e.mirrorTask(cat, taskID, xp)
	e.mirrorXP(XPEvent{Source: SourceTask, Amount: xp, Category: cat, RefID: taskID})
	e.mirrorChallenge(cat)
	if comp != nil {
		e.mirrorXP(XPEvent{
			Source:   SourceChallengeBonus,
			Amount:   comp.XPReward,
			Category: comp.Category,
			RefID:    comp.ChallengeID,
		})
	}
	e.mirrorProfile()

	return out
}

// RecordActivity touches the consecutive-day streak for a new session.
func (e *Engine) RecordActivity() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stats.RecordActivity(e.now()) {
		e.mirrorProfile()
	}
}

// Stats returns the current user stats snapshot.
func (e *Engine) Stats() stats.UserStats {
	return e.stats.Stats()
}

// Challenges returns the weekly challenge snapshot in catalog order.
func (e *Engine) Challenges() []challenges.Challenge {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tracker.Challenges()
}

// ChallengeProgress returns the first incomplete challenge's progress for a
// category, or the last challenge's when all are complete.
func (e *Engine) ChallengeProgress(cat catalog.Category) (current, target int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tracker.Progress(cat)
}

// ExerciseState returns the runner snapshot.
func (e *Engine) ExerciseState() progress.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runner.State()
}

// IsTaskComplete reports whether a task has been completed.
func (e *Engine) IsTaskComplete(cat catalog.Category, taskID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks.IsTaskComplete(cat, taskID)
}

// CompletedTasks returns the sorted completed task IDs for a category.
func (e *Engine) CompletedTasks(cat catalog.Category) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks.CompletedTasks(cat)
}

func (e *Engine) mirrorProfile() {
	if e.mirror == nil {
		return
	}
	e.mirror.SaveProfile(ProfileState{
		Stats:              e.stats.Stats(),
		LastActive:         e.stats.LastActive(),
		ExercisesCompleted: e.runner.CompletedCount(),
		WeekStart:          e.weekStart,
	})
}

func (e *Engine) mirrorChallenge(cat catalog.Category) {
	if e.mirror == nil {
		return
	}
	for _, ch := range e.tracker.Challenges() {
		if ch.Category == cat {
			e.mirror.SaveChallenge(ch)
		}
	}
}

func (e *Engine) mirrorTask(cat catalog.Category, taskID string, xp int) {
	if e.mirror == nil {
		return
	}
	e.mirror.SaveTask(cat, taskID, xp)
}

func (e *Engine) mirrorXP(ev XPEvent) {
	if e.mirror == nil {
		return
	}
	ev.SessionID = e.sessionID
	ev.At = e.now()
	e.mirror.AppendXP(ev)
}
