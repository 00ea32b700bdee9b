package io

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(dir, "rust_close_250_1.txt")
		require.NoError(t, os.WriteFile(path, []byte("Run 1:"), 0644))

		data, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Run 1:", string(data))
		assert.True(t, FileExists(path))
		assert.False(t, DirExists(path))
	})

	t.Run("missing file wraps fs.ErrNotExist", func(t *testing.T) {
		path := filepath.Join(dir, "missing.txt")
		_, err := ReadFile(path)
		require.ErrorIs(t, err, fs.ErrNotExist)
		assert.False(t, FileExists(path))
	})

	t.Run("directories are not files", func(t *testing.T) {
		assert.False(t, FileExists(dir))
		assert.True(t, DirExists(dir))
	})
}

func TestFileLock(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")

	t.Run("lock creates the directory", func(t *testing.T) {
		lock := NewFileLock(dir)
		require.NoError(t, lock.Lock())
		assert.True(t, DirExists(dir))
		assert.Equal(t, filepath.Join(dir, LockFileName), lock.Path())

		// a second lock on the same directory must fail while the first one is held
		other := NewFileLock(dir)
		require.Error(t, other.Lock())

		require.NoError(t, lock.Unlock())
		require.NoError(t, other.Lock())
		require.NoError(t, other.Unlock())
	})

	t.Run("with lock releases after the callback", func(t *testing.T) {
		called := false
		err := WithLock(dir, func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)

		require.NoError(t, WithLock(dir, func() error { return nil }))
	})

	t.Run("with lock returns the callback error", func(t *testing.T) {
		err := WithLock(dir, func() error { return fs.ErrPermission })
		require.ErrorIs(t, err, fs.ErrPermission)
	})
}
