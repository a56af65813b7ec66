package cache

import "errors"

// Error definitions for cache package.
var (
	ErrIssueNotCached = errors.New("issue not found in cache")
	ErrNilIssue       = errors.New("cannot cache a nil issue")
)
