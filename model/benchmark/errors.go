package benchmark

import (
	"errors"
	"fmt"
)

// MissingDirectoryError indicates that the tests directory of an experiment does not exist.
// Nothing can be collected for the experiment.
type MissingDirectoryError struct {
	dir string
}

func NewMissingDirectoryError(dir string) *MissingDirectoryError {
	return &MissingDirectoryError{dir: dir}
}

func (e *MissingDirectoryError) Error() string {
	return fmt.Sprintf("experiment directory %s does not exist", e.dir)
}

func IsMissingDirectoryError(err error) bool {
	var missingDirectoryError *MissingDirectoryError
	return errors.As(err, &missingDirectoryError)
}

// FileNotFoundError indicates that the log file of one concurrency level is missing.
type FileNotFoundError struct {
	path string
}

func NewFileNotFoundError(path string) *FileNotFoundError {
	return &FileNotFoundError{path: path}
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %s does not exist", e.path)
}

// Path returns the path that was looked up.
func (e *FileNotFoundError) Path() string {
	return e.path
}

func IsFileNotFoundError(err error) bool {
	var fileNotFoundError *FileNotFoundError
	return errors.As(err, &fileNotFoundError)
}

// NoMedianFoundError indicates that a log file exists but none of its runs reported a median.
type NoMedianFoundError struct {
	fileName string
	failed   int
}

func NewNoMedianFoundError(fileName string, failed int) *NoMedianFoundError {
	return &NoMedianFoundError{
		fileName: fileName,
		failed:   failed,
	}
}

func (e *NoMedianFoundError) Error() string {
	return fmt.Sprintf("no median times found for %s (%d failed tries)", e.fileName, e.failed)
}

func IsNoMedianFoundError(err error) bool {
	var noMedianFoundError *NoMedianFoundError
	return errors.As(err, &noMedianFoundError)
}
