// Package mapping correlates preview issue identifiers with their full issue records.
//
// A Mapping is owned by the caller that creates it and lives as long as the
// caller's session. It is safe for concurrent use.
package mapping

import (
	"fmt"
	"sync"

	"github.com/lerenn/issues-full/pkg/issue"
	"github.com/lerenn/issues-full/pkg/store"
)

// Key is the store key holding the persisted mapping.
const Key = "gitHubIssuesPreviewToFull"

// Entry is one preview to full correlation.
type Entry struct {
	PreviewID int64      `json:"preview_id" yaml:"preview_id"`
	Full      issue.Full `json:"full" yaml:"full"`
}

// Mapping maps preview identifiers to full issues, remembering insertion order.
type Mapping struct {
	store   store.Store
	saveMu  sync.Mutex
	mu      sync.RWMutex
	order   []int64
	entries map[int64]issue.Full
}

// New creates an empty mapping persisted in s.
func New(s store.Store) *Mapping {
	return &Mapping{
		store:   s,
		entries: make(map[int64]issue.Full),
	}
}

// Load creates a mapping restored from the entries persisted in s.
func Load(s store.Store) (*Mapping, error) {
	m := New(s)

	var entries []Entry
	if _, err := s.Get(Key, &entries); err != nil {
		return nil, fmt.Errorf("failed to load mapping: %w", err)
	}
	for _, e := range entries {
		m.Set(e.PreviewID, e.Full)
	}

	return m, nil
}

// Set records full as the resolution of the preview previewID.
func (m *Mapping) Set(previewID int64, full issue.Full) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[previewID]; !exists {
		m.order = append(m.order, previewID)
	}
	m.entries[previewID] = full
}

// Get returns the full issue recorded for previewID.
func (m *Mapping) Get(previewID int64) (issue.Full, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	full, exists := m.entries[previewID]
	return full, exists
}

// Len returns the number of recorded previews.
func (m *Mapping) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// Entries returns the recorded correlations in insertion order.
func (m *Mapping) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]Entry, 0, len(m.order))
	for _, id := range m.order {
		entries = append(entries, Entry{PreviewID: id, Full: m.entries[id]})
	}
	return entries
}

// Save persists every entry under Key.
// Saves are serialized, so the last save holds every entry set before it started.
func (m *Mapping) Save() error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if err := m.store.Set(Key, m.Entries()); err != nil {
		return fmt.Errorf("failed to save mapping: %w", err)
	}
	return nil
}
