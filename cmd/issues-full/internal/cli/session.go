package cli

import (
	"fmt"

	"github.com/lerenn/issues-full/pkg/auth"
	"github.com/lerenn/issues-full/pkg/avatar"
	"github.com/lerenn/issues-full/pkg/config"
	"github.com/lerenn/issues-full/pkg/dependencies"
	"github.com/lerenn/issues-full/pkg/forge"
	"github.com/lerenn/issues-full/pkg/fs"
	"github.com/lerenn/issues-full/pkg/logger"
	"github.com/lerenn/issues-full/pkg/store"
)

// OpenStore opens the store configured in cfg.
func OpenStore(cfg config.Config) (store.Store, error) {
	s, err := store.Open(cfg.Store.Backend, cfg.Store.Path, fs.NewFS())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	return s, nil
}

// Session bundles the dependencies of an enrichment run.
type Session struct {
	Config       config.Config
	Dependencies *dependencies.Dependencies
	Avatars      *avatar.Cache
}

// NewSession wires the forge, store, cache and avatar cache configured in cfg.
// The caller closes the session's store.
func NewSession(cfg config.Config) (*Session, error) {
	log := NewLogger()
	tokens := auth.NewEnvProvider(cfg.GitHub.TokenEnv)

	gitHub, err := forge.NewGitHub(
		forge.WithBaseURL(cfg.GitHub.BaseURL),
		forge.WithTokenProvider(tokens),
		forge.WithTimeout(cfg.GitHub.Timeout),
	)
	if err != nil {
		return nil, err
	}

	forgeLogger := logger.NewNoopLogger()
	if Verbose {
		forgeLogger = log
	}
	f, err := forge.NewManager(forgeLogger, gitHub).GetForge(cfg.Forge)
	if err != nil {
		return nil, err
	}

	s, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	avatars := avatar.NewCache(f)
	deps := dependencies.New().
		WithLogger(log).
		WithAuth(tokens).
		WithForge(f).
		WithStore(s).
		WithAvatars(avatars)

	return &Session{Config: cfg, Dependencies: deps, Avatars: avatars}, nil
}

// Close releases the session's store.
func (s *Session) Close() error {
	return s.Dependencies.Store.Close()
}
