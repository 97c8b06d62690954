package store

import (
	"context"
	"fmt"

	"github.com/asengupta/cyberquest/ent/challengestate"
	"github.com/asengupta/cyberquest/ent/profile"
	"github.com/asengupta/cyberquest/ent/taskcompletion"
	"github.com/asengupta/cyberquest/ent/xpevent"
)

// ResetUser deletes every row belonging to userID: profile, challenge
// state, task completions, and the XP event log. The seeded leaderboard is
// left untouched.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	if _, err := s.client.XPEvent.Delete().
		Where(xpevent.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete XP events: %w", err)
	}
	if _, err := s.client.TaskCompletion.Delete().
		Where(taskcompletion.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete task completions: %w", err)
	}
	if _, err := s.client.ChallengeState.Delete().
		Where(challengestate.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete challenge state: %w", err)
	}
	if _, err := s.client.Profile.Delete().
		Where(profile.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
