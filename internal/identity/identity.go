// Package identity resolves who a session belongs to. There is no auth:
// the user ID is a local namespace key so several learners can share one
// database. An empty identity plays anonymously, entirely in memory.
package identity

import (
	"os"
	"strings"
)

// EnvVar names the environment fallback for the session user.
const EnvVar = "CYBERQUEST_USER"

// Identity is the owner of a session.
type Identity struct {
	UserID string
}

// Anonymous reports whether this session persists nothing.
func (id Identity) Anonymous() bool {
	return id.UserID == ""
}

// Resolve picks the session user in priority order: the command-line value,
// then CYBERQUEST_USER, then anonymous. Whitespace-only values count as
// unset.
func Resolve(flagValue string) Identity {
	if v := strings.TrimSpace(flagValue); v != "" {
		return Identity{UserID: v}
	}
	if v := strings.TrimSpace(os.Getenv(EnvVar)); v != "" {
		return Identity{UserID: v}
	}
	return Identity{}
}
