package store

import (
	"context"
	"fmt"

	"github.com/asengupta/cyberquest/ent"
	"github.com/asengupta/cyberquest/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*ProfileRecord, error) {
	p, err := r.client.Profile.Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return entProfileToRecord(p), nil
}

func (r *profileRepo) Upsert(ctx context.Context, rec *ProfileRecord) error {
	existing, err := r.client.Profile.Query().
		Where(profile.UserID(rec.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	if existing == nil {
		_, err = r.client.Profile.Create().
			SetUserID(rec.UserID).
			SetXp(rec.XP).
			SetTotalEarnedXp(rec.TotalEarnedXP).
			SetStreak(rec.Streak).
			SetCompletedModules(rec.CompletedModules).
			SetExercisesCompleted(rec.ExercisesCompleted).
			SetWeekStart(rec.WeekStart).
			SetNillableLastActive(rec.LastActive).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	_, err = r.client.Profile.UpdateOne(existing).
		SetXp(rec.XP).
		SetTotalEarnedXp(rec.TotalEarnedXP).
		SetStreak(rec.Streak).
		SetCompletedModules(rec.CompletedModules).
		SetExercisesCompleted(rec.ExercisesCompleted).
		SetWeekStart(rec.WeekStart).
		SetNillableLastActive(rec.LastActive).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func entProfileToRecord(p *ent.Profile) *ProfileRecord {
	return &ProfileRecord{
		UserID:             p.UserID,
		XP:                 p.Xp,
		TotalEarnedXP:      p.TotalEarnedXp,
		Streak:             p.Streak,
		CompletedModules:   p.CompletedModules,
		ExercisesCompleted: p.ExercisesCompleted,
		WeekStart:          p.WeekStart,
		LastActive:         p.LastActive,
	}
}
