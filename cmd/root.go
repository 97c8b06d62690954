package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/asengupta/cyberquest/internal/app"
	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/identity"
	"github.com/asengupta/cyberquest/internal/mirror"
	"github.com/asengupta/cyberquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cyberquest",
	Short: "Gamified cybersecurity training in the terminal",
	Long:  "CyberQuest — a terminal portal where young learners run threat detection exercises, work challenge tracks, and climb the leaderboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPortal(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CYBERQUEST_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "User the session belongs to (overrides CYBERQUEST_USER env var); empty plays anonymously")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CYBERQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveIdentity reads the --user flag and falls back to the environment.
func resolveIdentity(cmd *cobra.Command) identity.Identity {
	u, _ := cmd.Flags().GetString("user")
	return identity.Resolve(u)
}

// runPortal wires store, mirror, and engine together and starts the TUI.
// Anonymous sessions skip persistence entirely.
func runPortal(cmd *cobra.Command) error {
	id := resolveIdentity(cmd)

	if id.Anonymous() {
		eng := engine.New(nil)
		eng.RecordActivity()
		return app.Run(eng, nil, nil)
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

	if err := st.LeaderboardRepo().Seed(ctx); err != nil {
		return fmt.Errorf("seed leaderboard: %w", err)
	}

	// Persistence trouble surfaces as an in-app banner; the alt screen
	// hides anything written to stderr for the rest of the session.
	warnCh := make(chan error, 8)

	repos := mirror.FromStore(st)
	seed, err := mirror.Load(ctx, repos, id.UserID)
	if err != nil {
		// A broken saved state should not keep the learner out; start
		// fresh and let the mirror overwrite it.
		warnCh <- fmt.Errorf("load progress: %w", err)
		seed = nil
	}

	sync := mirror.New(repos, id.UserID, mirror.WithWarnFunc(func(err error) {
		select {
		case warnCh <- err:
		default:
		}
	}))
	defer sync.Close()

	eng := engine.New(seed, engine.WithMirror(sync))
	eng.RecordActivity()

	return app.Run(eng, st.LeaderboardRepo(), warnCh)
}
