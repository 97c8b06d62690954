package release

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, status int, body string) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/asengupta/cyberquest/releases/latest", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewChecker(WithAPIBaseURL(srv.URL))
}

func TestCheckUpdateAvailable(t *testing.T) {
	c := newTestChecker(t, http.StatusOK,
		`{"tag_name": "v1.2.0", "html_url": "https://example.com/rel/v1.2.0"}`)

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Equal(t, "v1.1.0", result.CurrentVersion)
	assert.Equal(t, "https://example.com/rel/v1.2.0", result.ReleaseURL)
}

func TestCheckAlreadyLatest(t *testing.T) {
	c := newTestChecker(t, http.StatusOK, `{"tag_name": "v1.1.0"}`)

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckRunningAheadOfRelease(t *testing.T) {
	c := newTestChecker(t, http.StatusOK, `{"tag_name": "v1.1.0"}`)

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0-rc.1"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckBareTagsNormalized(t *testing.T) {
	c := newTestChecker(t, http.StatusOK, `{"tag_name": "1.2.0"}`)

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheckDevBuild(t *testing.T) {
	c := newTestChecker(t, http.StatusOK, `{"tag_name": "v1.2.0"}`)

	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheckServerError(t *testing.T) {
	c := newTestChecker(t, http.StatusInternalServerError, "nope")

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestCheckInvalidTag(t *testing.T) {
	c := newTestChecker(t, http.StatusOK, `{"tag_name": "nightly"}`)

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid release tag")
}
