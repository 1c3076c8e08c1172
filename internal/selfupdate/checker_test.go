package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, handler http.HandlerFunc) *Checker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewChecker(WithAPIBaseURL(srv.URL))
}

func releaseHandler(tag string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://example.com/releases/%s"}`, tag, tag)
	}
}

func TestCheck_UpdateAvailable(t *testing.T) {
	c := newTestChecker(t, releaseHandler("v1.4.0"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.2.3"})
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.4.0", result.LatestVersion)
	assert.Equal(t, "v1.2.3", result.CurrentVersion)
	assert.Equal(t, "https://example.com/releases/v1.4.0", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	c := newTestChecker(t, releaseHandler("v1.2.3"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.3"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_CurrentNewerThanRelease(t *testing.T) {
	c := newTestChecker(t, releaseHandler("v1.0.0"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewChecker()
	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.ErrorIs(t, err, ErrDevBuild)

	_, err = c.Check(context.Background(), &CheckInput{Version: ""})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_HTTPError(t *testing.T) {
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	})

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCheck_BadTag(t *testing.T) {
	c := newTestChecker(t, releaseHandler("nightly"))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
