package store

import (
	"context"
	"fmt"

	"github.com/asengupta/cyberquest/ent"
	"github.com/asengupta/cyberquest/ent/leaderboardentry"
	"github.com/asengupta/cyberquest/internal/stats"
)

// seedStandings are the remote players shown alongside the local learner.
// Levels are stored as displayed, not re-derived from XP.
var seedStandings = []LeaderboardRecord{
	{Name: "Alex Chen", XP: 15847, Level: 28, Streak: 45},
	{Name: "Sarah Kumar", XP: 14532, Level: 26, Streak: 32},
	{Name: "Mike Johnson", XP: 13891, Level: 25, Streak: 28},
	{Name: "Emma Davis", XP: 12456, Level: 23, Streak: 21},
	{Name: "Tom Wilson", XP: 10987, Level: 20, Streak: 18},
	{Name: "Lisa Brown", XP: 9876, Level: 19, Streak: 12},
	{Name: "David Lee", XP: 8765, Level: 17, Streak: 9},
}

// leaderboardRepo implements LeaderboardRepo using the ent client.
type leaderboardRepo struct {
	client *ent.Client
}

func (r *leaderboardRepo) Top(ctx context.Context, limit int) ([]LeaderboardRecord, error) {
	q := r.client.LeaderboardEntry.Query().
		Order(ent.Desc(leaderboardentry.FieldXp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}

	recs := make([]LeaderboardRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, LeaderboardRecord{
			Name:   row.Name,
			XP:     row.Xp,
			Level:  row.Level,
			Streak: row.Streak,
			Badge:  row.Badge,
		})
	}
	return recs, nil
}

func (r *leaderboardRepo) Seed(ctx context.Context) error {
	count, err := r.client.LeaderboardEntry.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count leaderboard: %w", err)
	}
	if count > 0 {
		return nil
	}

	builders := make([]*ent.LeaderboardEntryCreate, 0, len(seedStandings))
	for _, rec := range seedStandings {
		builders = append(builders, r.client.LeaderboardEntry.Create().
			SetName(rec.Name).
			SetXp(rec.XP).
			SetLevel(rec.Level).
			SetStreak(rec.Streak).
			SetBadge(string(stats.BadgeForLevel(rec.Level))))
	}
	if _, err := r.client.LeaderboardEntry.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("seed leaderboard: %w", err)
	}
	return nil
}
