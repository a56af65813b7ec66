//go:build integration

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lerenn/issues-full/pkg/config"
	"github.com/lerenn/issues-full/pkg/enricher"
	"github.com/lerenn/issues-full/pkg/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngAvatar = []byte("\x89PNG\x0D\x0A\x1A\x0Aavatar")

func newFakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/repos/acme/widgets/issues/42", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{
			"id": 99,
			"number": 42,
			"title": "Widgets break",
			"state": "open",
			"html_url": "https://github.com/acme/widgets/issues/42",
			"updated_at": "2024-01-02T00:00:00Z"
		}`)
	})
	mux.HandleFunc("/orgs/acme", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"login": "acme", "avatar_url": "%s/avatars/acme"}`, server.URL)
	})
	mux.HandleFunc("/avatars/acme", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(pngAvatar)
	})

	return server
}

func newTestConfig(t *testing.T, baseURL string) config.Config {
	t.Helper()

	t.Setenv("ISSUES_FULL_TEST_TOKEN", "test-token")
	return config.Config{
		Forge: "github",
		Store: config.StoreConfig{Backend: "file", Path: filepath.Join(t.TempDir(), "store.json")},
		GitHub: config.GitHubConfig{
			BaseURL:  baseURL,
			TokenEnv: "ISSUES_FULL_TEST_TOKEN",
			Timeout:  5 * time.Second,
		},
	}
}

func TestEnrich(t *testing.T) {
	Quiet = true
	t.Cleanup(func() { Quiet = false })

	server := newFakeGitHub(t)
	cfg := newTestConfig(t, server.URL)

	session, err := NewSession(cfg)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	avatarsDir := t.TempDir()
	var stdout bytes.Buffer
	err = Enrich(context.Background(), session, EnrichOptions{
		Input: "-",
		Stdin: strings.NewReader(`[
			{"id": 1, "body": "Duplicate of https://github.com/acme/widgets/issues/42"},
			{"id": 2, "body": "no link here"}
		]`),
		Stdout:     &stdout,
		Format:     OutputJSON,
		AvatarsDir: avatarsDir,
	})
	require.NoError(t, err)

	var printed []EnrichedPreview
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &printed))
	require.Len(t, printed, 2)
	assert.Equal(t, int64(1), printed[0].PreviewID)
	require.NotNil(t, printed[0].Issue)
	assert.Equal(t, int64(99), printed[0].Issue.ID)
	assert.Empty(t, printed[0].Error)
	assert.Equal(t, int64(2), printed[1].PreviewID)
	assert.Nil(t, printed[1].Issue)

	cached, err := session.Dependencies.Cache.List()
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "Widgets break", cached[0].Title)

	persisted, err := mapping.Load(session.Dependencies.Store)
	require.NoError(t, err)
	full, ok := persisted.Get(1)
	require.True(t, ok)
	assert.Equal(t, int64(99), full.ID)

	image, err := os.ReadFile(filepath.Join(avatarsDir, "acme.png"))
	require.NoError(t, err)
	assert.Equal(t, pngAvatar, image)
}

func TestEnrich_NoToken(t *testing.T) {
	Quiet = true
	t.Cleanup(func() { Quiet = false })

	server := newFakeGitHub(t)
	cfg := newTestConfig(t, server.URL)
	t.Setenv("ISSUES_FULL_TEST_TOKEN", "")

	session, err := NewSession(cfg)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	err = Enrich(context.Background(), session, EnrichOptions{
		Input: "-",
		Stdin: strings.NewReader(`[{"id": 1, "body": "https://github.com/acme/widgets/issues/42"}]`),
	})
	assert.ErrorIs(t, err, enricher.ErrNoAuthToken)
}

func TestNewSession_UnsupportedForge(t *testing.T) {
	cfg := newTestConfig(t, "")
	cfg.Forge = "gitlab"

	_, err := NewSession(cfg)
	assert.Error(t, err)
}
