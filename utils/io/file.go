package io

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileExists returns true if path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadFile reads the whole file. A missing file is reported with an error
// wrapping fs.ErrNotExist.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return data, nil
}

// EnsureDir creates dir and its parents if they do not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
