package store

import "errors"

// Error definitions for store package.
var (
	ErrUnsupportedBackend = errors.New("unsupported store backend")
	ErrStoreFileParse     = errors.New("failed to parse store file")
	ErrValueEncode        = errors.New("failed to encode value")
	ErrValueDecode        = errors.New("failed to decode value")
)
