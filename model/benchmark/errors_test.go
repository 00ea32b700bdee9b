package benchmark

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		err := fmt.Errorf("could not collect: %w", NewMissingDirectoryError("../data/tests/echo"))
		assert.Equal(t, "could not collect: experiment directory ../data/tests/echo does not exist", err.Error())
		assert.True(t, IsMissingDirectoryError(err))
		assert.False(t, IsFileNotFoundError(err))
	})

	t.Run("file not found", func(t *testing.T) {
		e := NewFileNotFoundError("a/b.txt")
		assert.Equal(t, "a/b.txt", e.Path())
		assert.True(t, IsFileNotFoundError(fmt.Errorf("wrapped: %w", e)))
		assert.False(t, IsNoMedianFoundError(e))
	})

	t.Run("no median found", func(t *testing.T) {
		err := NewNoMedianFoundError("c_close_250_2.txt", 2)
		assert.Equal(t, "no median times found for c_close_250_2.txt (2 failed tries)", err.Error())
		assert.True(t, IsNoMedianFoundError(err))
		assert.False(t, IsNoMedianFoundError(fmt.Errorf("dummy error")))
	})
}
