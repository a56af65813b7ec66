package cli

import "errors"

// Error definitions for cli package.
var (
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
	ErrReadPreviews            = errors.New("failed to read previews")
	ErrInvalidIssueID          = errors.New("invalid issue id")
	ErrAlreadyInitialized      = errors.New("configuration already exists")
	ErrWatchStdin              = errors.New("watch needs a previews file, stdin cannot be read again")
)
