// Package store provides the persistent key-value store holding JSON-serializable values.
package store

import (
	"fmt"

	"github.com/lerenn/issues-full/pkg/fs"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Store is a string-keyed store of JSON-serializable values.
type Store interface {
	// Get decodes the value stored under key into value.
	// It reports false when the key is absent, leaving value untouched.
	Get(key string, value any) (bool, error)
	// Set encodes value and stores it under key, replacing any previous value.
	Set(key string, value any) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys lists the stored keys in lexical order.
	Keys() ([]string, error)
	// Close releases the resources held by the store.
	Close() error
}

// Open opens the store for the given backend at path.
func Open(backend, path string, filesystem fs.FS) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(filesystem, path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, backend)
	}
}
