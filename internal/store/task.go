package store

import (
	"context"
	"fmt"

	"github.com/asengupta/cyberquest/ent"
	"github.com/asengupta/cyberquest/ent/taskcompletion"
)

// taskRepo implements TaskRepo using the ent client.
type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) List(ctx context.Context, userID string) ([]TaskRecord, error) {
	rows, err := r.client.TaskCompletion.Query().
		Where(taskcompletion.UserID(userID)).
		Order(ent.Asc(taskcompletion.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	recs := make([]TaskRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, TaskRecord{
			UserID:      row.UserID,
			Category:    row.Category,
			TaskID:      row.TaskID,
			XPReward:    row.XpReward,
			CompletedAt: row.CompletedAt,
		})
	}
	return recs, nil
}

func (r *taskRepo) Add(ctx context.Context, rec TaskRecord) error {
	exists, err := r.client.TaskCompletion.Query().
		Where(
			taskcompletion.UserID(rec.UserID),
			taskcompletion.Category(rec.Category),
			taskcompletion.TaskID(rec.TaskID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check task: %w", err)
	}
	if exists {
		return nil
	}

	create := r.client.TaskCompletion.Create().
		SetUserID(rec.UserID).
		SetCategory(rec.Category).
		SetTaskID(rec.TaskID).
		SetXpReward(rec.XPReward)
	if !rec.CompletedAt.IsZero() {
		create.SetCompletedAt(rec.CompletedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}
