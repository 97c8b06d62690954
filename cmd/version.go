package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/asengupta/cyberquest/internal/release"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("cyberquest", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		checker := release.NewChecker()
		result, err := checker.Check(ctx, &release.CheckInput{Version: version})
		if err != nil {
			if errors.Is(err, release.ErrDevBuild) {
				fmt.Println("Development build; skipping release check.")
				return nil
			}
			return fmt.Errorf("check for updates: %w", err)
		}

		if result.UpdateAvailable {
			fmt.Printf("Newer release available: %s\n%s\n", result.LatestVersion, result.ReleaseURL)
		} else {
			fmt.Println("Up to date.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
