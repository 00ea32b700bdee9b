package io

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the name of the lock file placed in a locked directory.
const LockFileName = ".lock"

// FileLock is an exclusive, inter-process lock on a directory.
// It is held while the directory content is being rewritten, so that two
// invocations writing into the same directory fail fast instead of interleaving.
type FileLock struct {
	lockFile *flock.Flock
	path     string
}

// NewFileLock creates a lock for the given directory. The directory is not touched
// until Lock is called.
func NewFileLock(dir string) *FileLock {
	lockPath := filepath.Join(dir, LockFileName)

	return &FileLock{
		lockFile: flock.New(lockPath),
		path:     lockPath,
	}
}

// Lock creates the directory if needed and acquires the lock without blocking.
// An error is returned if another process holds the lock.
func (fl *FileLock) Lock() error {
	if err := EnsureDir(filepath.Dir(fl.path)); err != nil {
		return fmt.Errorf("failed to create directory for lock file %s: %w", fl.path, err)
	}

	locked, err := fl.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire file lock at %s: %w", fl.path, err)
	}
	if !locked {
		return fmt.Errorf("cannot acquire exclusive lock on %s: another process is writing to this directory", fl.path)
	}
	return nil
}

// Unlock releases the lock. The lock file itself is left in place.
func (fl *FileLock) Unlock() error {
	if err := fl.lockFile.Unlock(); err != nil {
		return fmt.Errorf("failed to release file lock at %s: %w", fl.path, err)
	}
	return nil
}

// Path returns the path to the lock file.
func (fl *FileLock) Path() string {
	return fl.path
}

// WithLock runs f while holding the lock of dir.
func WithLock(dir string, f func() error) (err error) {
	lock := NewFileLock(dir)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}()

	return f()
}
