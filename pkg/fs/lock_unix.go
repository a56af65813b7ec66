//go:build !windows

package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileLock acquires an exclusive flock on filename.lock, blocking until it is available.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileLock, err)
	}

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileLock, err)
	}

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		_ = lockFile.Close()
		return nil, fmt.Errorf("%w: %w", ErrFileLock, err)
	}

	// The lock file is kept so every locker contends on the same inode.
	return func() {
		_ = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
		_ = lockFile.Close()
	}, nil
}
