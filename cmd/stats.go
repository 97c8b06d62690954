package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/mirror"
	"github.com/asengupta/cyberquest/internal/stats"
	"github.com/asengupta/cyberquest/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveIdentity(cmd)

		var eng *engine.Engine
		if id.Anonymous() {
			eng = engine.New(nil)
		} else {
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

			seed, err := mirror.Load(ctx, mirror.FromStore(st), id.UserID)
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}
			eng = engine.New(seed)
		}

		st := eng.Stats()
		ex := eng.ExerciseState()

		fmt.Printf("Level:              %d (%s)\n", st.Level, stats.BadgeForLevel(st.Level))
		fmt.Printf("XP:                 %d (%d into level, %d per level)\n",
			st.XP, stats.XPIntoLevel(st.XP), stats.XPPerLevel)
		fmt.Printf("Bonus XP earned:    %d\n", st.TotalEarnedXP)
		fmt.Printf("Streak:             %d days\n", st.Streak)
		fmt.Printf("Modules completed:  %d\n", st.CompletedModules)
		fmt.Printf("Exercises this week: %d\n", ex.CompletedCount)

		fmt.Println("\nWeekly challenges:")
		for _, ch := range eng.Challenges() {
			mark := " "
			if ch.Completed {
				mark = "✓"
			}
			fmt.Printf("  [%s] %-24s %d/%d (+%d XP)\n",
				mark, ch.Title, ch.Current, ch.Target, ch.XPReward)
		}
		return nil
	},
}
