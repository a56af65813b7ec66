package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse      = errors.New("failed to parse config file")
	ErrConfigNotInitialized = errors.New("configuration not found. Run 'issues-full init' to initialize")

	// Configuration validation errors.
	ErrStorePathEmpty      = errors.New("store.path cannot be empty")
	ErrInvalidStoreBackend = errors.New("store.backend must be one of file, sqlite, memory")
	ErrForgeEmpty          = errors.New("forge cannot be empty")
	ErrTokenEnvEmpty       = errors.New("github.token_env cannot be empty")
	ErrInvalidConcurrency  = errors.New("enrich.concurrency cannot be negative")
	ErrInvalidTimeout      = errors.New("github.timeout cannot be negative")
)
