// Package cache persists full issue records keyed by issue identity.
package cache

import (
	"fmt"
	"sync"

	"github.com/lerenn/issues-full/pkg/issue"
	"github.com/lerenn/issues-full/pkg/store"
)

// Key is the store key holding the cached issues.
const Key = "gitHubIssuesFull"

// Cache is an unbounded store of full issues, serialized as an ordered list on every write.
// Entries keep the position of their first insertion.
type Cache struct {
	store store.Store
	key   string
	mu    sync.Mutex
}

// New creates a cache persisted in s under Key.
func New(s store.Store) *Cache {
	return &Cache{
		store: s,
		key:   Key,
	}
}

// Merge stores full if no entry exists for its ID or if it was updated strictly
// after the cached entry. It reports whether the cache was written.
//
// The read-modify-write runs under the cache lock, so concurrent merges of the
// same issue never replace a newer record with an older one.
func (c *Cache) Merge(full *issue.Full) (bool, error) {
	if full == nil {
		return false, ErrNilIssue
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	issues, err := c.load()
	if err != nil {
		return false, err
	}

	index := indexOf(issues, full.ID)
	switch {
	case index < 0:
		issues = append(issues, *full)
	case full.IsNewerThan(&issues[index]):
		issues[index] = *full
	default:
		return false, nil
	}

	if err := c.store.Set(c.key, issues); err != nil {
		return false, fmt.Errorf("failed to save cached issues: %w", err)
	}
	return true, nil
}

// Get returns the cached issue with the given ID.
func (c *Cache) Get(id int64) (*issue.Full, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	issues, err := c.load()
	if err != nil {
		return nil, err
	}

	index := indexOf(issues, id)
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIssueNotCached, id)
	}
	return &issues[index], nil
}

// List returns every cached issue in insertion order.
func (c *Cache) List() ([]issue.Full, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load()
}

func (c *Cache) load() ([]issue.Full, error) {
	var issues []issue.Full
	if _, err := c.store.Get(c.key, &issues); err != nil {
		return nil, fmt.Errorf("failed to load cached issues: %w", err)
	}
	return issues, nil
}

func indexOf(issues []issue.Full, id int64) int {
	for i := range issues {
		if issues[i].ID == id {
			return i
		}
	}
	return -1
}
