package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// No profile yet.
	rec, err := repo.Get(ctx, "casey")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil profile when none exists")
	}

	week := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	active := week.Add(48 * time.Hour)
	err = repo.Upsert(ctx, &ProfileRecord{
		UserID:             "casey",
		XP:                 2847,
		TotalEarnedXP:      2847,
		Streak:             7,
		CompletedModules:   23,
		ExercisesCompleted: 2,
		WeekStart:          week,
		LastActive:         &active,
	})
	if err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	rec, err = repo.Get(ctx, "casey")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil profile")
	}
	if rec.XP != 2847 || rec.Streak != 7 || rec.ExercisesCompleted != 2 {
		t.Errorf("profile = %+v, want xp=2847 streak=7 exercises=2", rec)
	}
	if rec.LastActive == nil || !rec.LastActive.Equal(active) {
		t.Errorf("last active = %v, want %v", rec.LastActive, active)
	}

	// Second upsert updates in place.
	rec.XP = 3347
	rec.ExercisesCompleted = 3
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}
	rec, err = repo.Get(ctx, "casey")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if rec.XP != 3347 || rec.ExercisesCompleted != 3 {
		t.Errorf("updated profile = %+v, want xp=3347 exercises=3", rec)
	}

	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("profile rows = %d, want 1", count)
	}
}

func TestChallengeUpsertAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChallengeRepo()
	ctx := context.Background()

	week := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	base := ChallengeRecord{
		UserID:      "casey",
		ChallengeID: "weekly-threat-detection",
		Category:    "threat-detection",
		Current:     2,
		Target:      5,
		XPReward:    500,
		WeekStart:   week,
	}
	if err := repo.Upsert(ctx, base); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	// Progress advances in place.
	base.Current = 5
	base.Completed = true
	if err := repo.Upsert(ctx, base); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	recs, err := repo.List(ctx, "casey")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("rows = %d, want 1", len(recs))
	}
	if recs[0].Current != 5 || !recs[0].Completed {
		t.Errorf("row = %+v, want current=5 completed", recs[0])
	}

	// Other users' rows are invisible.
	recs, err = repo.List(ctx, "someone-else")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("rows for other user = %d, want 0", len(recs))
	}
}

func TestTaskAddIgnoresDuplicates(t *testing.T) {
	s := openTestStore(t)
	repo := s.TaskRepo()
	ctx := context.Background()

	rec := TaskRecord{
		UserID:   "casey",
		Category: "secure-coding",
		TaskID:   "code-1",
		XPReward: 100,
	}
	for i := 0; i < 3; i++ {
		if err := repo.Add(ctx, rec); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	recs, err := repo.List(ctx, "casey")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("rows = %d, want 1", len(recs))
	}
	if recs[0].CompletedAt.IsZero() {
		t.Error("expected completed_at to be stamped")
	}
}

func TestXPEventAppendAssignsSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sources := []string{"task", "task", "challenge-bonus"}
	for _, src := range sources {
		err := repo.AppendXPEvent(ctx, XPEventRecord{
			UserID:    "casey",
			Source:    src,
			Amount:    100,
			Category:  "secure-coding",
			RefID:     "code-1",
			SessionID: "sess-1",
		})
		if err != nil {
			t.Fatalf("append %s: %v", src, err)
		}
	}

	recs, err := repo.QueryXPEvents(ctx, "casey", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("events = %d, want 3", len(recs))
	}
	for i, rec := range recs {
		if rec.Sequence != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, rec.Sequence, i+1)
		}
		if rec.Source != sources[i] {
			t.Errorf("source[%d] = %q, want %q", i, rec.Source, sources[i])
		}
		if rec.Timestamp.IsZero() {
			t.Errorf("event %d has zero timestamp", i)
		}
	}
}

func TestXPEventQueryFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendXPEvent(ctx, XPEventRecord{
			UserID:    "casey",
			Source:    "task",
			Amount:    100,
			Category:  "secure-coding",
			RefID:     "code-1",
			SessionID: "sess-1",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.QueryXPEvents(ctx, "casey", QueryOpts{After: 2, Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("events = %d, want 2", len(recs))
	}
	if recs[0].Sequence != 3 || recs[1].Sequence != 4 {
		t.Errorf("sequences = [%d %d], want [3 4]", recs[0].Sequence, recs[1].Sequence)
	}
}

func TestLeaderboardSeedAndTop(t *testing.T) {
	s := openTestStore(t)
	repo := s.LeaderboardRepo()
	ctx := context.Background()

	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Seeding again must not duplicate rows.
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	recs, err := repo.Top(ctx, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("rows = %d, want 3", len(recs))
	}
	if recs[0].Name != "Alex Chen" || recs[0].XP != 15847 {
		t.Errorf("leader = %+v, want Alex Chen with 15847 XP", recs[0])
	}
	if recs[0].Badge != "Expert" {
		t.Errorf("leader badge = %q, want Expert", recs[0].Badge)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].XP > recs[i-1].XP {
			t.Errorf("row %d out of order: %d > %d", i, recs[i].XP, recs[i-1].XP)
		}
	}

	all, err := repo.Top(ctx, 0)
	if err != nil {
		t.Fatalf("top all: %v", err)
	}
	if len(all) != 7 {
		t.Errorf("total rows = %d, want 7", len(all))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profiles", "challenge_states", "task_completions", "xp_events", "leaderboard_entries"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
