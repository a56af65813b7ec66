//go:build unit

package forge

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lerenn/issues-full/pkg/auth"
	"github.com/lerenn/issues-full/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGitHub starts a fake GitHub API and returns a forge pointed at it.
func newTestGitHub(t *testing.T, mux *http.ServeMux, opts ...GitHubOption) (*GitHub, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	github, err := NewGitHub(append([]GitHubOption{WithBaseURL(server.URL)}, opts...)...)
	require.NoError(t, err)
	return github, server
}

func TestGitHub_Name(t *testing.T) {
	github, err := NewGitHub()
	require.NoError(t, err)
	assert.Equal(t, "github", github.Name())
}

func TestGitHub_GetIssue(t *testing.T) {
	var authorization string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/issues/42", func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		fmt.Fprint(w, `{
			"id": 99,
			"number": 42,
			"title": "Widgets break",
			"body": "details",
			"state": "open",
			"html_url": "https://github.com/acme/widgets/issues/42",
			"url": "https://api.github.com/repos/acme/widgets/issues/42",
			"comments": 3,
			"labels": [{"name": "bug", "color": "d73a4a"}],
			"user": {"login": "octocat", "avatar_url": "https://avatars.example/octocat"},
			"assignees": [{"login": "hubot"}],
			"created_at": "2024-01-01T00:00:00Z",
			"updated_at": "2024-01-02T00:00:00Z"
		}`)
	})

	github, _ := newTestGitHub(t, mux, WithTokenProvider(auth.StaticProvider("abc")))

	full, err := github.GetIssue(context.Background(), issue.Reference{
		Owner:       "acme",
		Repository:  "widgets",
		IssueNumber: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, &issue.Full{
		ID:        99,
		Number:    42,
		Title:     "Widgets break",
		Body:      "details",
		State:     "open",
		HTMLURL:   "https://github.com/acme/widgets/issues/42",
		URL:       "https://api.github.com/repos/acme/widgets/issues/42",
		Comments:  3,
		Labels:    []issue.Label{{Name: "bug", Color: "d73a4a"}},
		User:      &issue.User{Login: "octocat", AvatarURL: "https://avatars.example/octocat"},
		Assignees: []issue.User{{Login: "hubot"}},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}, full)
	assert.Equal(t, "Bearer abc", authorization)
}

func TestGitHub_GetIssue_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		headers  map[string]string
		expected error
	}{
		{name: "not found", status: http.StatusNotFound, expected: ErrIssueNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, expected: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, expected: ErrUnauthorized},
		{
			name:     "rate limited",
			status:   http.StatusForbidden,
			headers:  map[string]string{"X-RateLimit-Remaining": "0", "X-RateLimit-Limit": "60"},
			expected: ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/repos/acme/widgets/issues/42", func(w http.ResponseWriter, _ *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"message": "nope"}`)
			})

			github, _ := newTestGitHub(t, mux)

			_, err := github.GetIssue(context.Background(), issue.Reference{
				Owner:       "acme",
				Repository:  "widgets",
				IssueNumber: 42,
			})
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestGitHub_GetOwnerAvatar_Organization(t *testing.T) {
	mux := http.NewServeMux()
	github, server := newTestGitHub(t, mux)

	mux.HandleFunc("/orgs/acme", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"login": "acme", "avatar_url": "%s/avatars/acme.png"}`, server.URL)
	})
	mux.HandleFunc("/avatars/acme.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("PNG-acme"))
	})

	data, err := github.GetOwnerAvatar(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, []byte("PNG-acme"), data)
}

func TestGitHub_GetOwnerAvatar_UserFallback(t *testing.T) {
	mux := http.NewServeMux()
	github, server := newTestGitHub(t, mux)

	mux.HandleFunc("/orgs/bob", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})
	mux.HandleFunc("/users/bob", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"login": "bob", "avatar_url": "%s/avatars/bob.png"}`, server.URL)
	})
	mux.HandleFunc("/avatars/bob.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("PNG-bob"))
	})

	data, err := github.GetOwnerAvatar(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, []byte("PNG-bob"), data)
}

func TestGitHub_GetOwnerAvatar_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	notFound := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	}
	mux.HandleFunc("/orgs/ghost", notFound)
	mux.HandleFunc("/users/ghost", notFound)

	github, _ := newTestGitHub(t, mux)

	_, err := github.GetOwnerAvatar(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestGitHub_GetOwnerAvatar_DownloadError(t *testing.T) {
	mux := http.NewServeMux()
	github, server := newTestGitHub(t, mux)

	mux.HandleFunc("/orgs/acme", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"login": "acme", "avatar_url": "%s/avatars/missing.png"}`, server.URL)
	})

	_, err := github.GetOwnerAvatar(context.Background(), "acme")
	assert.ErrorIs(t, err, ErrAvatarDownload)
}
