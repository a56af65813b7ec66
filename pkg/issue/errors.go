// Package issue provides data structures and error types for handling forge issues.
package issue

import "errors"

// Issue-specific error types.
var (
	ErrInvalidIssueReference = errors.New("invalid issue reference format")
	ErrInvalidIssueNumber    = errors.New("invalid issue number")
)
