package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/mirror"
	"github.com/asengupta/cyberquest/internal/stats"
	"github.com/asengupta/cyberquest/internal/store"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the global standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := st.LeaderboardRepo().Seed(ctx); err != nil {
			return fmt.Errorf("seed leaderboard: %w", err)
		}
		rows, err := st.LeaderboardRepo().Top(ctx, 0)
		if err != nil {
			return fmt.Errorf("query leaderboard: %w", err)
		}

		// Merge the local learner in when a user is set.
		id := resolveIdentity(cmd)
		if !id.Anonymous() {
			seed, err := mirror.Load(ctx, mirror.FromStore(st), id.UserID)
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}
			local := engine.New(seed).Stats()
			rows = append(rows, store.LeaderboardRecord{
				Name:   "You",
				XP:     local.XP,
				Level:  local.Level,
				Streak: local.Streak,
				Badge:  string(stats.BadgeForLevel(local.Level)),
			})
			sort.SliceStable(rows, func(i, j int) bool { return rows[i].XP > rows[j].XP })
		}

		for i, row := range rows {
			fmt.Printf("%2d. %-14s %6d XP  Lv %-3d 🔥%-3d %s\n",
				i+1, row.Name, row.XP, row.Level, row.Streak, row.Badge)
		}
		return nil
	},
}
