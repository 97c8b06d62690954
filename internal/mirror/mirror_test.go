package mirror

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asengupta/cyberquest/internal/catalog"
	"github.com/asengupta/cyberquest/internal/challenges"
	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/store"
)

// recorder collects the write operations fakes receive, in order.
type recorder struct {
	mu   sync.Mutex
	ops  []string
	gate chan struct{} // when set, writes block until the gate closes
	err  error
}

func (r *recorder) record(op string) error {
	if r.gate != nil {
		<-r.gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
	return r.err
}

func (r *recorder) log() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ops...)
}

type fakeProfiles struct {
	rec    *recorder
	stored *store.ProfileRecord

	mu   sync.Mutex
	last *store.ProfileRecord
}

func (f *fakeProfiles) Get(ctx context.Context, userID string) (*store.ProfileRecord, error) {
	return f.stored, nil
}

func (f *fakeProfiles) Upsert(ctx context.Context, rec *store.ProfileRecord) error {
	f.mu.Lock()
	f.last = rec
	f.mu.Unlock()
	return f.rec.record("profile")
}

func (f *fakeProfiles) lastUpsert() *store.ProfileRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

type fakeChallenges struct {
	rec  *recorder
	rows []store.ChallengeRecord
}

func (f *fakeChallenges) List(ctx context.Context, userID string) ([]store.ChallengeRecord, error) {
	return f.rows, nil
}

func (f *fakeChallenges) Upsert(ctx context.Context, rec store.ChallengeRecord) error {
	return f.rec.record("challenge:" + rec.ChallengeID)
}

type fakeTasks struct {
	rec  *recorder
	rows []store.TaskRecord
}

func (f *fakeTasks) List(ctx context.Context, userID string) ([]store.TaskRecord, error) {
	return f.rows, nil
}

func (f *fakeTasks) Add(ctx context.Context, rec store.TaskRecord) error {
	return f.rec.record("task:" + rec.TaskID)
}

type fakeEvents struct {
	rec *recorder
}

func (f *fakeEvents) AppendXPEvent(ctx context.Context, rec store.XPEventRecord) error {
	return f.rec.record("xp:" + rec.Source)
}

func (f *fakeEvents) QueryXPEvents(ctx context.Context, userID string, opts store.QueryOpts) ([]store.XPEventRecord, error) {
	return nil, nil
}

func fakeSet(rec *recorder) (Repos, *fakeProfiles) {
	profiles := &fakeProfiles{rec: rec}
	return Repos{
		Profiles:   profiles,
		Challenges: &fakeChallenges{rec: rec},
		Tasks:      &fakeTasks{rec: rec},
		Events:     &fakeEvents{rec: rec},
	}, profiles
}

func TestWritesAppliedInCallOrder(t *testing.T) {
	rec := &recorder{}
	repos, _ := fakeSet(rec)
	s := New(repos, "casey")

	s.SaveTask(catalog.CategorySecureCoding, "code-1", 100)
	s.AppendXP(engine.XPEvent{Source: engine.SourceTask, Amount: 100, RefID: "code-1"})
	s.SaveChallenge(challenges.Challenge{
		ChallengeDef: catalog.ChallengeDef{ID: "weekly-secure-coding"},
	})
	s.SaveProfile(engine.ProfileState{})
	s.Close()

	want := []string{"task:code-1", "xp:task", "challenge:weekly-secure-coding", "profile"}
	assert.Equal(t, want, rec.log())
}

func TestCloseDrainsQueue(t *testing.T) {
	rec := &recorder{}
	repos, _ := fakeSet(rec)
	s := New(repos, "casey")

	for i := 0; i < 20; i++ {
		s.SaveProfile(engine.ProfileState{})
	}
	s.Close()

	assert.Len(t, rec.log(), 20)
}

func TestFullQueueDropsAndWarns(t *testing.T) {
	gate := make(chan struct{})
	rec := &recorder{gate: gate}
	repos, _ := fakeSet(rec)

	var warnMu sync.Mutex
	var warned []error
	s := New(repos, "casey",
		WithQueueSize(1),
		WithWarnFunc(func(err error) {
			warnMu.Lock()
			warned = append(warned, err)
			warnMu.Unlock()
		}),
	)

	// First write occupies the worker (blocked on the gate), second fills
	// the queue, third must be dropped.
	s.SaveProfile(engine.ProfileState{})
	waitForBlockedWorker(t, s)
	s.SaveTask(catalog.CategorySecureCoding, "code-1", 100)
	s.SaveTask(catalog.CategorySecureCoding, "code-2", 150)

	warnMu.Lock()
	dropped := len(warned)
	warnMu.Unlock()
	require.Equal(t, 1, dropped, "expected exactly one dropped write")

	close(gate)
	s.Close()

	// The blocked write and the queued one still landed.
	assert.Len(t, rec.log(), 2)
}

// waitForBlockedWorker waits until the syncer's worker has picked up the
// first op, so the queue capacity is genuinely free again.
func waitForBlockedWorker(t *testing.T, s *Syncer) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("worker never picked up the blocking write")
		default:
		}
		if len(s.queue) == 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
}

func TestWriteFailureWarns(t *testing.T) {
	wantErr := errors.New("disk on fire")
	rec := &recorder{err: wantErr}
	repos, _ := fakeSet(rec)

	var warnMu sync.Mutex
	var got error
	s := New(repos, "casey", WithWarnFunc(func(err error) {
		warnMu.Lock()
		got = err
		warnMu.Unlock()
	}))

	s.SaveProfile(engine.ProfileState{})
	s.Close()

	warnMu.Lock()
	defer warnMu.Unlock()
	assert.ErrorIs(t, got, wantErr)
}

func TestSaveProfileOmitsZeroLastActive(t *testing.T) {
	rec := &recorder{}
	repos, profiles := fakeSet(rec)
	s := New(repos, "casey")

	s.SaveProfile(engine.ProfileState{})
	s.Close()

	require.NotNil(t, profiles.lastUpsert())
	assert.Nil(t, profiles.lastUpsert().LastActive)
}

func TestLoadMissingProfileReturnsNil(t *testing.T) {
	rec := &recorder{}
	repos, _ := fakeSet(rec)

	seed, err := Load(context.Background(), repos, "casey")
	require.NoError(t, err)
	assert.Nil(t, seed)
}

func TestLoadMapsStoredState(t *testing.T) {
	week := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	active := week.Add(48 * time.Hour)

	rec := &recorder{}
	repos, profiles := fakeSet(rec)
	profiles.stored = &store.ProfileRecord{
		UserID:             "casey",
		XP:                 2847,
		TotalEarnedXP:      500,
		Streak:             7,
		CompletedModules:   23,
		ExercisesCompleted: 2,
		WeekStart:          week,
		LastActive:         &active,
	}
	repos.Challenges = &fakeChallenges{rec: rec, rows: []store.ChallengeRecord{
		{ChallengeID: "weekly-threat-detection", Category: "threat-detection", Current: 2, WeekStart: week},
		{ChallengeID: "weekly-ghost", Category: "retired-category", Current: 1, WeekStart: week},
	}}
	repos.Tasks = &fakeTasks{rec: rec, rows: []store.TaskRecord{
		{Category: "secure-coding", TaskID: "code-1"},
		{Category: "secure-coding", TaskID: "code-2"},
		{Category: "retired-category", TaskID: "old-1"},
	}}

	seed, err := Load(context.Background(), repos, "casey")
	require.NoError(t, err)
	require.NotNil(t, seed)

	assert.Equal(t, 2847, seed.Stats.XP)
	assert.Equal(t, 500, seed.Stats.TotalEarnedXP)
	assert.Equal(t, 7, seed.Stats.Streak)
	assert.Equal(t, 2, seed.ExercisesCompleted)
	assert.True(t, seed.WeekStart.Equal(week))
	assert.True(t, seed.LastActive.Equal(active))

	// Rows with a category the catalog no longer knows are dropped.
	require.Len(t, seed.Challenges, 1)
	assert.Equal(t, "weekly-threat-detection", seed.Challenges[0].ID)
	assert.Equal(t, 2, seed.Challenges[0].Current)

	require.Len(t, seed.Tasks, 1)
	assert.Equal(t, []string{"code-1", "code-2"}, seed.Tasks[catalog.CategorySecureCoding])
}
