package store

import (
	"context"
	"fmt"

	"github.com/asengupta/cyberquest/ent"
	"github.com/asengupta/cyberquest/ent/challengestate"
)

// challengeRepo implements ChallengeRepo using the ent client.
type challengeRepo struct {
	client *ent.Client
}

func (r *challengeRepo) List(ctx context.Context, userID string) ([]ChallengeRecord, error) {
	rows, err := r.client.ChallengeState.Query().
		Where(challengestate.UserID(userID)).
		Order(ent.Asc(challengestate.FieldChallengeID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query challenges: %w", err)
	}

	recs := make([]ChallengeRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, ChallengeRecord{
			UserID:      row.UserID,
			ChallengeID: row.ChallengeID,
			Category:    row.Category,
			Current:     row.Current,
			Target:      row.Target,
			XPReward:    row.XpReward,
			Completed:   row.Completed,
			WeekStart:   row.WeekStart,
		})
	}
	return recs, nil
}

func (r *challengeRepo) Upsert(ctx context.Context, rec ChallengeRecord) error {
	existing, err := r.client.ChallengeState.Query().
		Where(
			challengestate.UserID(rec.UserID),
			challengestate.ChallengeID(rec.ChallengeID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query challenge: %w", err)
	}

	if existing == nil {
		_, err = r.client.ChallengeState.Create().
			SetUserID(rec.UserID).
			SetChallengeID(rec.ChallengeID).
			SetCategory(rec.Category).
			SetCurrent(rec.Current).
			SetTarget(rec.Target).
			SetXpReward(rec.XPReward).
			SetCompleted(rec.Completed).
			SetWeekStart(rec.WeekStart).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create challenge: %w", err)
		}
		return nil
	}

	_, err = r.client.ChallengeState.UpdateOne(existing).
		SetCategory(rec.Category).
		SetCurrent(rec.Current).
		SetTarget(rec.Target).
		SetXpReward(rec.XPReward).
		SetCompleted(rec.Completed).
		SetWeekStart(rec.WeekStart).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update challenge: %w", err)
	}
	return nil
}
