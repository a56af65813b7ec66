package forge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/issues-full/pkg/auth"
	"github.com/lerenn/issues-full/pkg/issue"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// DefaultTimeout bounds each GitHub API call.
	DefaultTimeout = 10 * time.Second
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client   *github.Client
	download *http.Client
	timeout  time.Duration
}

type gitHubOptions struct {
	httpClient *http.Client
	baseURL    string
	tokens     auth.TokenProvider
	timeout    time.Duration
}

// GitHubOption configures a GitHub forge.
type GitHubOption func(*gitHubOptions)

// WithHTTPClient sets the HTTP client used for API calls and avatar downloads.
func WithHTTPClient(client *http.Client) GitHubOption {
	return func(o *gitHubOptions) {
		o.httpClient = client
	}
}

// WithBaseURL sets a custom API base URL (GitHub Enterprise, tests).
func WithBaseURL(baseURL string) GitHubOption {
	return func(o *gitHubOptions) {
		o.baseURL = baseURL
	}
}

// WithTokenProvider authenticates every API call with the provider's token.
func WithTokenProvider(tokens auth.TokenProvider) GitHubOption {
	return func(o *gitHubOptions) {
		o.tokens = tokens
	}
}

// WithTimeout bounds each API call. Zero disables the bound.
func WithTimeout(timeout time.Duration) GitHubOption {
	return func(o *gitHubOptions) {
		o.timeout = timeout
	}
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(opts ...GitHubOption) (*GitHub, error) {
	o := gitHubOptions{
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	apiHTTPClient := o.httpClient
	if o.tokens != nil {
		apiHTTPClient = &http.Client{
			Transport: &auth.Transport{Provider: o.tokens, Base: o.httpClient.Transport},
			Timeout:   o.httpClient.Timeout,
		}
	}

	client := github.NewClient(apiHTTPClient)
	if o.baseURL != "" {
		baseURL, err := url.Parse(o.baseURL)
		if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBaseURL, o.baseURL)
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
	}

	return &GitHub{
		client:   client,
		download: o.httpClient,
		timeout:  o.timeout,
	}, nil
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// GetIssue fetches the full issue record from GitHub API.
func (g *GitHub) GetIssue(ctx context.Context, ref issue.Reference) (*issue.Full, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	gi, resp, err := g.client.Issues.Get(ctx, ref.Owner, ref.Repository, ref.IssueNumber)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, fmt.Errorf("%w: %s", ErrIssueNotFound, ref))
	}

	return toFull(gi), nil
}

// GetOwnerAvatar downloads the avatar of an organization, falling back to a user account.
func (g *GitHub) GetOwnerAvatar(ctx context.Context, owner string) ([]byte, error) {
	avatarURL, err := g.ownerAvatarURL(ctx, owner)
	if err != nil {
		return nil, err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, avatarURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvatarDownload, err)
	}

	resp, err := g.download.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvatarDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrAvatarDownload, avatarURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvatarDownload, err)
	}
	return data, nil
}

// ownerAvatarURL resolves the avatar URL of owner, trying organizations then users.
func (g *GitHub) ownerAvatarURL(ctx context.Context, owner string) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	notFound := fmt.Errorf("%w: %s", ErrOwnerNotFound, owner)

	org, resp, err := g.client.Organizations.Get(ctx, owner)
	if err == nil {
		return org.GetAvatarURL(), nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return "", g.handleGitHubError(err, resp, notFound)
	}

	user, resp, err := g.client.Users.Get(ctx, owner)
	if err != nil {
		return "", g.handleGitHubError(err, resp, notFound)
	}
	if user.GetAvatarURL() == "" {
		return "", notFound
	}
	return user.GetAvatarURL(), nil
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, notFound error) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return notFound
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check the GitHub token", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to call GitHub API: %w", err)
}

func (g *GitHub) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// toFull converts a GitHub API issue into a full issue record.
func toFull(gi *github.Issue) *issue.Full {
	full := &issue.Full{
		ID:        gi.GetID(),
		Number:    gi.GetNumber(),
		Title:     gi.GetTitle(),
		Body:      gi.GetBody(),
		State:     gi.GetState(),
		HTMLURL:   gi.GetHTMLURL(),
		URL:       gi.GetURL(),
		Comments:  gi.GetComments(),
		CreatedAt: gi.GetCreatedAt().Time,
		UpdatedAt: gi.GetUpdatedAt().Time,
	}

	for _, l := range gi.Labels {
		full.Labels = append(full.Labels, issue.Label{Name: l.GetName(), Color: l.GetColor()})
	}
	if gi.User != nil {
		full.User = &issue.User{Login: gi.User.GetLogin(), AvatarURL: gi.User.GetAvatarURL()}
	}
	for _, a := range gi.Assignees {
		full.Assignees = append(full.Assignees, issue.User{Login: a.GetLogin(), AvatarURL: a.GetAvatarURL()})
	}
	if gi.ClosedAt != nil {
		closedAt := gi.ClosedAt.Time
		full.ClosedAt = &closedAt
	}

	return full
}
