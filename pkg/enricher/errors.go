package enricher

import "errors"

// Error definitions for enricher package.
var (
	ErrNoAuthToken = errors.New("no auth token found")
	ErrNoMapping   = errors.New("a preview mapping is required")
	ErrFetchIssue  = errors.New("failed to fetch full issue")
	ErrCacheIssue  = errors.New("failed to cache full issue")
	ErrSaveMapping = errors.New("failed to save preview mapping")
	ErrAvatarFetch = errors.New("failed to fetch owner avatar")
)
