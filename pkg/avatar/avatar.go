// Package avatar fetches and keeps the avatar images of issue owners.
package avatar

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=avatar.go -destination=mockavatar.gen.go -package=avatar

// ErrFetch is returned when an avatar could not be fetched.
var ErrFetch = errors.New("failed to fetch avatar")

// Fetcher fetches the avatar of an organization as a side effect.
type Fetcher interface {
	FetchAvatar(ctx context.Context, org string) error
}

// Source downloads avatar images.
type Source interface {
	GetOwnerAvatar(ctx context.Context, owner string) ([]byte, error)
}

// Cache is an in-memory organization image cache.
// Each organization is downloaded at most once while cached; concurrent
// requests for the same organization share one download.
type Cache struct {
	source Source
	group  singleflight.Group
	mu     sync.RWMutex
	images map[string][]byte
}

// NewCache creates an empty cache downloading from source.
func NewCache(source Source) *Cache {
	return &Cache{
		source: source,
		images: make(map[string][]byte),
	}
}

// FetchAvatar downloads the avatar of org unless it is already cached.
// Failed downloads are not cached.
func (c *Cache) FetchAvatar(ctx context.Context, org string) error {
	if _, cached := c.Get(org); cached {
		return nil
	}

	_, err, _ := c.group.Do(org, func() (any, error) {
		if image, cached := c.Get(org); cached {
			return image, nil
		}

		image, err := c.source.GetOwnerAvatar(ctx, org)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFetch, org, err)
		}

		c.mu.Lock()
		c.images[org] = image
		c.mu.Unlock()
		return image, nil
	})
	return err
}

// Get returns the cached avatar of org.
func (c *Cache) Get(org string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	image, cached := c.images[org]
	return image, cached
}

// Organizations lists the cached organizations in lexical order.
func (c *Cache) Organizations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	orgs := make([]string, 0, len(c.images))
	for org := range c.images {
		orgs = append(orgs, org)
	}
	slices.Sort(orgs)
	return orgs
}
