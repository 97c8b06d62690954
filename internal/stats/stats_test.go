package stats

import (
	"sync"
	"testing"
	"time"
)

func TestAwardXP(t *testing.T) {
	a := NewAggregator(UserStats{XP: 2847}, time.Time{})

	a.AwardXP(100)
	a.AwardXP(500)

	s := a.Stats()
	if s.XP != 3447 {
		t.Errorf("XP = %d, want 3447", s.XP)
	}
	if s.TotalEarnedXP != 600 {
		t.Errorf("TotalEarnedXP = %d, want 600", s.TotalEarnedXP)
	}
	if s.TotalEarnedXP > s.XP {
		t.Error("TotalEarnedXP must never exceed XP")
	}
}

func TestAwardXPIgnoresNonPositive(t *testing.T) {
	a := NewAggregator(UserStats{XP: 100}, time.Time{})

	a.AwardXP(0)
	a.AwardXP(-50)

	s := a.Stats()
	if s.XP != 100 || s.TotalEarnedXP != 0 {
		t.Errorf("stats = %+v, want XP 100 and no earned XP", s)
	}
}

func TestAwardXPConcurrent(t *testing.T) {
	a := NewAggregator(UserStats{}, time.Time{})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.AwardXP(10)
		}()
	}
	wg.Wait()

	s := a.Stats()
	if s.XP != 1000 || s.TotalEarnedXP != 1000 {
		t.Errorf("stats = %+v, want 1000 XP with no lost updates", s)
	}
}

func TestSeedEarnedClampedToXP(t *testing.T) {
	a := NewAggregator(UserStats{XP: 50, TotalEarnedXP: 200}, time.Time{})
	s := a.Stats()
	if s.TotalEarnedXP != 50 {
		t.Errorf("TotalEarnedXP = %d, want clamped to 50", s.TotalEarnedXP)
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{249, 1},
		{250, 2},
		{2847, 12}, // default seed profile lands on level 12
		{15847, 64},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestBadgeForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  Badge
	}{
		{1, BadgeBeginner},
		{19, BadgeBeginner},
		{20, BadgeIntermediate},
		{24, BadgeIntermediate},
		{25, BadgeAdvanced},
		{27, BadgeAdvanced},
		{28, BadgeExpert},
		{64, BadgeExpert},
	}
	for _, tt := range tests {
		if got := BadgeForLevel(tt.level); got != tt.want {
			t.Errorf("BadgeForLevel(%d) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestCompleteModule(t *testing.T) {
	a := NewAggregator(DefaultStats(), time.Time{})
	a.CompleteModule()
	if got := a.Stats().CompletedModules; got != 24 {
		t.Errorf("CompletedModules = %d, want 24", got)
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRecordActivityStreak(t *testing.T) {
	a := NewAggregator(UserStats{Streak: 7}, day("2026-08-27"))

	// Same day: no change.
	if changed := a.RecordActivity(day("2026-08-27").Add(5 * time.Hour)); changed {
		t.Error("same-day activity should not change the streak")
	}
	if got := a.Stats().Streak; got != 7 {
		t.Errorf("streak = %d, want 7", got)
	}

	// Next day: extends.
	if changed := a.RecordActivity(day("2026-08-28")); !changed {
		t.Error("next-day activity should extend the streak")
	}
	if got := a.Stats().Streak; got != 8 {
		t.Errorf("streak = %d, want 8", got)
	}

	// Gap: resets to 1.
	if changed := a.RecordActivity(day("2026-09-02")); !changed {
		t.Error("activity after a gap should reset the streak")
	}
	if got := a.Stats().Streak; got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestRecordActivityFirstEver(t *testing.T) {
	a := NewAggregator(UserStats{}, time.Time{})
	a.RecordActivity(day("2026-08-29"))
	if got := a.Stats().Streak; got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}
