package engine

import (
	"testing"
	"time"

	"github.com/asengupta/cyberquest/internal/catalog"
	"github.com/asengupta/cyberquest/internal/challenges"
	"github.com/asengupta/cyberquest/internal/stats"
)

// recordingMirror captures mirror calls in order for assertions.
type recordingMirror struct {
	profiles   []ProfileState
	challenges []challenges.Challenge
	tasks      []string
	xpEvents   []XPEvent
}

func (m *recordingMirror) SaveProfile(p ProfileState) { m.profiles = append(m.profiles, p) }
func (m *recordingMirror) SaveChallenge(ch challenges.Challenge) {
	m.challenges = append(m.challenges, ch)
}
func (m *recordingMirror) SaveTask(cat catalog.Category, taskID string, xpReward int) {
	m.tasks = append(m.tasks, taskID)
}
func (m *recordingMirror) AppendXP(ev XPEvent) { m.xpEvents = append(m.xpEvents, ev) }

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func freshEngine(opts ...Option) *Engine {
	opts = append(opts, WithClock(fixedClock("2026-08-26T10:00:00Z")))
	return New(&Seed{}, opts...)
}

func threatChallenge(t *testing.T, e *Engine) challenges.Challenge {
	t.Helper()
	for _, ch := range e.Challenges() {
		if ch.Category == catalog.CategoryThreatDetection {
			return ch
		}
	}
	t.Fatal("no threat-detection challenge")
	return challenges.Challenge{}
}

// A full five-exercise pass completes the weekly threat detection
// challenge and awards its bonus exactly once.
func TestFullExercisePass(t *testing.T) {
	e := freshEngine()

	ex, ok := e.ContinueChallenge()
	if !ok {
		t.Fatal("continue on fresh engine failed")
	}
	if ex.ID != "threat-1" {
		t.Errorf("first exercise = %s, want threat-1", ex.ID)
	}

	var bonuses int
	for i := 0; i < 5; i++ {
		out, ok := e.CompleteExercise()
		if !ok {
			t.Fatalf("complete %d failed", i)
		}
		if out.Completion != nil {
			bonuses++
			if out.Completion.XPReward != 500 {
				t.Errorf("bonus = %d, want 500", out.Completion.XPReward)
			}
		}
	}

	if bonuses != 1 {
		t.Fatalf("challenge bonuses = %d, want exactly 1", bonuses)
	}

	st := e.ExerciseState()
	if st.CompletedCount != 5 || st.ActiveIndex != -1 {
		t.Errorf("runner state = %+v, want completed 5 and no active", st)
	}

	ch := threatChallenge(t, e)
	if ch.Current != 5 || !ch.Completed {
		t.Errorf("challenge = %d/%d completed=%v, want 5/5 true", ch.Current, ch.Target, ch.Completed)
	}
	if got := e.Stats().TotalEarnedXP; got != 500 {
		t.Errorf("TotalEarnedXP = %d, want 500", got)
	}

	// Nothing left to continue.
	if _, ok := e.ContinueChallenge(); ok {
		t.Error("continue after full pass should be a no-op")
	}
}

// A first task completion awards its table XP and advances the
// category challenge without a bonus.
func TestCompleteTaskFirstTime(t *testing.T) {
	e := freshEngine()

	out := e.CompleteTask(catalog.CategoryVulnerabilityScan, "vuln-1")
	if out.AlreadyComplete {
		t.Fatal("fresh task reported already complete")
	}
	if out.TaskXP != 100 || !out.KnownTask {
		t.Errorf("task XP = (%d, %v), want (100, true)", out.TaskXP, out.KnownTask)
	}
	if out.Completion != nil {
		t.Error("one task should not complete a target-3 challenge")
	}
	if got := e.Stats().TotalEarnedXP; got != 100 {
		t.Errorf("TotalEarnedXP = %d, want 100", got)
	}
}

// Repeating a task never double-awards.
func TestCompleteTaskIdempotent(t *testing.T) {
	e := freshEngine()

	e.CompleteTask(catalog.CategoryVulnerabilityScan, "vuln-1")
	before := e.Stats()

	out := e.CompleteTask(catalog.CategoryVulnerabilityScan, "vuln-1")
	if !out.AlreadyComplete {
		t.Error("repeat should report AlreadyComplete")
	}
	after := e.Stats()
	if after.XP != before.XP || after.TotalEarnedXP != before.TotalEarnedXP {
		t.Errorf("stats moved on repeat: %+v -> %+v", before, after)
	}

	ch := e.Challenges()
	for _, c := range ch {
		if c.Category == catalog.CategoryVulnerabilityScan && c.Current != 1 {
			t.Errorf("challenge current = %d, want 1", c.Current)
		}
	}
}

// XP conservation: earned XP equals the sum of every granted reward, with
// task XP and challenge bonus applied in order.
func TestXPConservationAcrossTrack(t *testing.T) {
	mirror := &recordingMirror{}
	e := freshEngine(WithMirror(mirror))

	// Complete the whole vulnerability track (target 3): 100+150+200 task
	// XP plus the 300 challenge bonus on the third task.
	taskXP := 0
	for _, id := range []string{"vuln-1", "vuln-2", "vuln-3"} {
		out := e.CompleteTask(catalog.CategoryVulnerabilityScan, id)
		taskXP += out.TaskXP
		if id == "vuln-3" {
			if out.Completion == nil {
				t.Fatal("third task should complete the weekly challenge")
			}
		}
	}

	want := taskXP + 300
	if got := e.Stats().TotalEarnedXP; got != want {
		t.Errorf("TotalEarnedXP = %d, want %d", got, want)
	}

	// Mirror saw the awards in order: task XP before its challenge bonus.
	var sources []XPSource
	for _, ev := range mirror.xpEvents {
		sources = append(sources, ev.Source)
	}
	wantSources := []XPSource{SourceTask, SourceTask, SourceTask, SourceChallengeBonus}
	if len(sources) != len(wantSources) {
		t.Fatalf("xp events = %v, want %v", sources, wantSources)
	}
	for i := range wantSources {
		if sources[i] != wantSources[i] {
			t.Errorf("event %d = %s, want %s", i, sources[i], wantSources[i])
		}
	}
}

func TestUnknownTaskGetsDefaultReward(t *testing.T) {
	e := freshEngine()
	out := e.CompleteTask(catalog.CategoryIncidentResponse, "mystery-task")
	if out.KnownTask {
		t.Error("unknown task reported as known")
	}
	if out.TaskXP != catalog.DefaultTaskXP {
		t.Errorf("task XP = %d, want default %d", out.TaskXP, catalog.DefaultTaskXP)
	}
}

// Restart resets the cursor but never revokes XP.
func TestRestartKeepsXP(t *testing.T) {
	e := freshEngine()
	e.ContinueChallenge()
	for i := 0; i < 5; i++ {
		e.CompleteExercise()
	}
	earned := e.Stats().TotalEarnedXP

	e.Restart()

	st := e.ExerciseState()
	if st.CompletedCount != 0 || st.ActiveIndex != -1 {
		t.Errorf("runner state = %+v, want reset", st)
	}
	if got := e.Stats().TotalEarnedXP; got != earned {
		t.Errorf("TotalEarnedXP = %d, want unchanged %d", got, earned)
	}

	// A second pass cannot re-complete the weekly challenge.
	e.ContinueChallenge()
	for i := 0; i < 5; i++ {
		out, ok := e.CompleteExercise()
		if ok && out.Completion != nil {
			t.Fatal("second pass re-emitted the weekly completion")
		}
	}
	if got := e.Stats().TotalEarnedXP; got != earned {
		t.Errorf("TotalEarnedXP = %d after second pass, want %d", got, earned)
	}
}

// Anonymous sessions (nil mirror) work identically in memory.
func TestNoMirrorIsPureInMemory(t *testing.T) {
	e := freshEngine()
	e.ContinueChallenge()
	if _, ok := e.CompleteExercise(); !ok {
		t.Fatal("complete failed without mirror")
	}
	e.CompleteTask(catalog.CategorySecureCoding, "code-1")
	if e.Stats().TotalEarnedXP != 100 {
		t.Errorf("earned = %d, want 100", e.Stats().TotalEarnedXP)
	}
}

func TestCompleteExerciseWithoutActive(t *testing.T) {
	e := freshEngine()
	if _, ok := e.CompleteExercise(); ok {
		t.Error("complete without an open exercise should be a no-op")
	}
}

func TestSeedHydration(t *testing.T) {
	clock := fixedClock("2026-08-26T10:00:00Z")
	week := challenges.WeekStartOf(clock())

	seed := &Seed{
		Stats:              stats.UserStats{XP: 3000, Streak: 4, CompletedModules: 10, TotalEarnedXP: 150},
		ExercisesCompleted: 2,
		WeekStart:          week,
		Challenges: []ChallengeRow{
			{ID: "weekly-threat-detection", Current: 2, WeekStart: week},
			{ID: "weekly-secure-coding", Current: 1, WeekStart: week},
		},
		Tasks: map[catalog.Category][]string{
			catalog.CategorySecureCoding: {"code-1"},
		},
	}

	e := New(seed, WithClock(clock))

	if got := e.ExerciseState().CompletedCount; got != 2 {
		t.Errorf("exercises completed = %d, want 2", got)
	}
	if !e.IsTaskComplete(catalog.CategorySecureCoding, "code-1") {
		t.Error("restored task not complete")
	}
	if got := e.Stats().XP; got != 3000 {
		t.Errorf("XP = %d, want 3000", got)
	}

	// Resumes mid-sequence at the cursor.
	ex, ok := e.ContinueChallenge()
	if !ok || ex.ID != "threat-3" {
		t.Errorf("resumed exercise = (%v, %v), want threat-3", ex.ID, ok)
	}
}

func TestStaleWeekReissuesChallenges(t *testing.T) {
	clock := fixedClock("2026-08-26T10:00:00Z")
	lastWeek := challenges.WeekStartOf(clock().AddDate(0, 0, -7))

	seed := &Seed{
		Stats:              stats.UserStats{XP: 5000},
		ExercisesCompleted: 5,
		WeekStart:          lastWeek,
		Challenges: []ChallengeRow{
			{ID: "weekly-threat-detection", Current: 5, WeekStart: lastWeek},
		},
		Tasks: map[catalog.Category][]string{
			catalog.CategoryVulnerabilityScan: {"vuln-1"},
		},
	}

	e := New(seed, WithClock(clock))

	// Stale week: exercise cursor and challenges reset, XP and tasks kept.
	if got := e.ExerciseState().CompletedCount; got != 0 {
		t.Errorf("exercises completed = %d, want 0 after week rollover", got)
	}
	ch := threatChallenge(t, e)
	if ch.Current != 0 || ch.Completed {
		t.Errorf("challenge = %+v, want fresh", ch)
	}
	if got := e.Stats().XP; got != 5000 {
		t.Errorf("XP = %d, want carried over", got)
	}
	if !e.IsTaskComplete(catalog.CategoryVulnerabilityScan, "vuln-1") {
		t.Error("task completions should survive the week boundary")
	}
}

func TestMirrorWriteOrderForExercisePass(t *testing.T) {
	mirror := &recordingMirror{}
	e := freshEngine(WithMirror(mirror))

	e.ContinueChallenge()
	for i := 0; i < 5; i++ {
		e.CompleteExercise()
	}

	// One challenge row write per completion, one profile write per
	// completion, one bonus XP event at the end.
	if len(mirror.challenges) != 5 {
		t.Errorf("challenge writes = %d, want 5", len(mirror.challenges))
	}
	if len(mirror.xpEvents) != 1 || mirror.xpEvents[0].Source != SourceChallengeBonus {
		t.Errorf("xp events = %+v, want single challenge bonus", mirror.xpEvents)
	}
	last := mirror.profiles[len(mirror.profiles)-1]
	if last.ExercisesCompleted != 5 {
		t.Errorf("mirrored cursor = %d, want 5", last.ExercisesCompleted)
	}
	if last.Stats.TotalEarnedXP != 500 {
		t.Errorf("mirrored earned = %d, want 500", last.Stats.TotalEarnedXP)
	}
}

func TestRecordActivityMirrorsProfile(t *testing.T) {
	mirror := &recordingMirror{}
	e := freshEngine(WithMirror(mirror))

	e.RecordActivity()
	if len(mirror.profiles) != 1 {
		t.Fatalf("profile writes = %d, want 1", len(mirror.profiles))
	}
	// Same-day repeat changes nothing and writes nothing.
	e.RecordActivity()
	if len(mirror.profiles) != 1 {
		t.Errorf("profile writes = %d after same-day repeat, want 1", len(mirror.profiles))
	}
}
