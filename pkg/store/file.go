package store

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/lerenn/issues-full/pkg/fs"
)

// document is the content of a store file.
type document map[string]json.RawMessage

// FileStore keeps every key in a single JSON file.
// Writes hold a file lock and replace the file atomically.
type FileStore struct {
	fs   fs.FS
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the file at path.
// The file does not need to exist; it is created on first write.
func NewFileStore(filesystem fs.FS, path string) *FileStore {
	return &FileStore{
		fs:   filesystem,
		path: path,
	}
}

// Get decodes the value stored under key into value.
func (s *FileStore) Get(key string, value any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	raw, exists := doc[key]
	if !exists {
		return false, nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("%w: key %s: %w", ErrValueDecode, key, err)
	}
	return true, nil
}

// Set encodes value and stores it under key.
func (s *FileStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %s: %w", ErrValueEncode, key, err)
	}

	return s.update(func(doc document) {
		doc[key] = raw
	})
}

// Delete removes key from the store.
func (s *FileStore) Delete(key string) error {
	return s.update(func(doc document) {
		delete(doc, key)
	})
}

// Keys lists the stored keys in lexical order.
func (s *FileStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error {
	return nil
}

// update applies fn to the document under the file lock and saves the result.
func (s *FileStore) update(fn func(document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.fs.FileLock(s.path)
	if err != nil {
		return fmt.Errorf("failed to acquire file lock: %w", err)
	}
	defer unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	fn(doc)

	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFileAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

// load reads the store file, returning an empty document when it is missing.
func (s *FileStore) load() (document, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check store file existence: %w", err)
	}
	if !exists {
		return document{}, nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	doc := document{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreFileParse, err)
	}
	return doc, nil
}

func encodeDocument(doc document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal store file: %w", err)
	}
	return data, nil
}
