// Package forge provides access to the forge hosting the issues.
package forge

import (
	"context"
	"fmt"

	"github.com/lerenn/issues-full/pkg/issue"
	"github.com/lerenn/issues-full/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mockforge.gen.go -package=forge

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// GetIssue fetches the full issue record identified by ref
	GetIssue(ctx context.Context, ref issue.Reference) (*issue.Full, error)

	// GetOwnerAvatar downloads the avatar image of an organization or user
	GetOwnerAvatar(ctx context.Context, owner string) ([]byte, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with the given forge implementations registered.
func NewManager(logger logger.Logger, forges ...Forge) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	for _, f := range forges {
		m.forges[f.Name()] = f
		m.logger.Logf("Registered forge %s", f.Name())
	}

	return m
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}
