package forge

import "errors"

// Forge-specific errors.
var (
	ErrUnsupportedForge = errors.New("unsupported forge")
	ErrIssueNotFound    = errors.New("issue not found")
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrRateLimited      = errors.New("rate limited by forge API")
	ErrUnauthorized     = errors.New("unauthorized access to forge API")
	ErrInvalidBaseURL   = errors.New("invalid forge API base URL")
	ErrAvatarDownload   = errors.New("failed to download avatar")
)
