package store

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// MemoryStore keeps encoded values in memory for the lifetime of the process.
// Values are stored encoded so callers never share memory with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get decodes the value stored under key into value.
func (s *MemoryStore) Get(key string, value any) (bool, error) {
	s.mu.RLock()
	raw, exists := s.values[key]
	s.mu.RUnlock()

	if !exists {
		return false, nil
	}
	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("%w: key %s: %w", ErrValueDecode, key, err)
	}
	return true, nil
}

// Set encodes value and stores it under key.
func (s *MemoryStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %s: %w", ErrValueEncode, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = raw
	return nil
}

// Delete removes key from the store.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Keys lists the stored keys in lexical order.
func (s *MemoryStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}
