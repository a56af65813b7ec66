package issue

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// urlPattern matches GitHub issue URLs embedded anywhere in a text.
var urlPattern = regexp.MustCompile(`https://github\.com/(?P<org>[^/\s]+)/(?P<repo>[^/\s]+)/issues/(?P<issue_number>\d+)`)

// Preview represents the lightweight summary of an issue shown before its full record is loaded.
// Its body embeds the URL of the issue it summarizes.
type Preview struct {
	ID        int64     `json:"id" yaml:"id"`
	Number    int       `json:"number,omitempty" yaml:"number,omitempty"`
	Title     string    `json:"title,omitempty" yaml:"title,omitempty"`
	Body      string    `json:"body" yaml:"body"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Label represents an issue label.
type Label struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// User represents the author or an assignee of an issue.
type User struct {
	Login     string `json:"login" yaml:"login"`
	AvatarURL string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
}

// Full represents the complete issue record retrieved from the forge.
type Full struct {
	ID        int64      `json:"id" yaml:"id"`
	Number    int        `json:"number" yaml:"number"`
	Title     string     `json:"title" yaml:"title"`
	Body      string     `json:"body,omitempty" yaml:"body,omitempty"`
	State     string     `json:"state,omitempty" yaml:"state,omitempty"`
	HTMLURL   string     `json:"html_url" yaml:"html_url"`
	URL       string     `json:"url,omitempty" yaml:"url,omitempty"`
	Labels    []Label    `json:"labels,omitempty" yaml:"labels,omitempty"`
	User      *User      `json:"user,omitempty" yaml:"user,omitempty"`
	Assignees []User     `json:"assignees,omitempty" yaml:"assignees,omitempty"`
	Comments  int        `json:"comments,omitempty" yaml:"comments,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at" yaml:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty" yaml:"closed_at,omitempty"`
}

// IsNewerThan reports whether the issue was updated strictly after other.
// A nil other is always older.
func (f *Full) IsNewerThan(other *Full) bool {
	if other == nil {
		return true
	}
	return f.UpdatedAt.After(other.UpdatedAt)
}

// Owner returns the organization found in the issue canonical URL, or an empty string.
func (f *Full) Owner() string {
	ref, err := ParseReference(f.HTMLURL)
	if err != nil {
		return ""
	}
	return ref.Owner
}

// Reference represents a parsed issue reference.
type Reference struct {
	Owner       string
	Repository  string
	IssueNumber int
	URL         string
}

// String returns the owner/repo#number form of the reference.
func (r Reference) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repository, r.IssueNumber)
}

// ParseReference extracts the first GitHub issue URL found in text.
func ParseReference(text string) (*Reference, error) {
	matches := urlPattern.FindStringSubmatch(text)
	if matches == nil {
		return nil, ErrInvalidIssueReference
	}

	number, err := strconv.Atoi(matches[urlPattern.SubexpIndex("issue_number")])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIssueNumber, matches[urlPattern.SubexpIndex("issue_number")])
	}

	return &Reference{
		Owner:       matches[urlPattern.SubexpIndex("org")],
		Repository:  matches[urlPattern.SubexpIndex("repo")],
		IssueNumber: number,
		URL:         matches[0],
	}, nil
}
