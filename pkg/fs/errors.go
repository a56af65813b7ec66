package fs

import "errors"

// Error definitions for fs package.
var (
	ErrFileLock       = errors.New("failed to acquire file lock")
	ErrPathResolution = errors.New("path resolution failed")
)
