package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/asengupta/cyberquest/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveIdentity(cmd)
		if id.Anonymous() {
			return fmt.Errorf("reset needs a user: pass --user or set CYBERQUEST_USER")
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes all progress for %q; re-run with --force to confirm", id.UserID)
		}

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

		if err := st.ResetUser(ctx, id.UserID); err != nil {
			return fmt.Errorf("reset user: %w", err)
		}

		fmt.Printf("Progress for %q deleted.\n", id.UserID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
