// Package dependencies provides a centralized dependency container for the issues-full application.
package dependencies

import (
	"errors"

	"github.com/lerenn/issues-full/pkg/auth"
	"github.com/lerenn/issues-full/pkg/avatar"
	"github.com/lerenn/issues-full/pkg/cache"
	"github.com/lerenn/issues-full/pkg/fs"
	"github.com/lerenn/issues-full/pkg/forge"
	"github.com/lerenn/issues-full/pkg/logger"
	"github.com/lerenn/issues-full/pkg/store"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing      = errors.New("fs dependency is required but not set")
	ErrLoggerMissing  = errors.New("logger dependency is required but not set")
	ErrAuthMissing    = errors.New("auth dependency is required but not set")
	ErrForgeMissing   = errors.New("forge dependency is required but not set")
	ErrStoreMissing   = errors.New("store dependency is required but not set")
	ErrCacheMissing   = errors.New("cache dependency is required but not set")
	ErrAvatarsMissing = errors.New("avatars dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS      fs.FS
	Logger  logger.Logger
	Auth    auth.TokenProvider
	Forge   forge.Forge
	Store   store.Store
	Cache   *cache.Cache
	Avatars avatar.Fetcher
}

// New creates a new Dependencies instance with sensible defaults.
// Forge, Store, Cache and Avatars depend on configuration and are set via With* methods.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Logger: logger.NewNoopLogger(),
		Auth:   auth.NewEnvProvider(auth.DefaultTokenEnv),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithAuth sets the token provider and returns the instance for chaining.
func (d *Dependencies) WithAuth(provider auth.TokenProvider) *Dependencies {
	d.Auth = provider
	return d
}

// WithForge sets the forge and returns the instance for chaining.
func (d *Dependencies) WithForge(f forge.Forge) *Dependencies {
	d.Forge = f
	return d
}

// WithStore sets the store and, unless already set, a cache persisted in it.
func (d *Dependencies) WithStore(s store.Store) *Dependencies {
	d.Store = s
	if d.Cache == nil {
		d.Cache = cache.New(s)
	}
	return d
}

// WithCache sets the issue cache and returns the instance for chaining.
func (d *Dependencies) WithCache(c *cache.Cache) *Dependencies {
	d.Cache = c
	return d
}

// WithAvatars sets the avatar fetcher and returns the instance for chaining.
func (d *Dependencies) WithAvatars(fetcher avatar.Fetcher) *Dependencies {
	d.Avatars = fetcher
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Auth == nil, ErrAuthMissing},
		{d.Forge == nil, ErrForgeMissing},
		{d.Store == nil, ErrStoreMissing},
		{d.Cache == nil, ErrCacheMissing},
		{d.Avatars == nil, ErrAvatarsMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
