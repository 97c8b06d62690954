package identity

import "testing"

func TestResolveFlagWins(t *testing.T) {
	t.Setenv(EnvVar, "env-user")
	id := Resolve("flag-user")
	if id.UserID != "flag-user" {
		t.Errorf("user = %q, want flag-user", id.UserID)
	}
}

func TestResolveEnvFallback(t *testing.T) {
	t.Setenv(EnvVar, "env-user")
	id := Resolve("")
	if id.UserID != "env-user" {
		t.Errorf("user = %q, want env-user", id.UserID)
	}
}

func TestResolveAnonymous(t *testing.T) {
	t.Setenv(EnvVar, "")
	id := Resolve("   ")
	if !id.Anonymous() {
		t.Errorf("expected anonymous identity, got %q", id.UserID)
	}
}
