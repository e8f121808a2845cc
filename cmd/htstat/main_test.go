//go:build unit

package main

import (
	"github.com/gostonefire/hashtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestCollectKeys(t *testing.T) {
	t.Run("combines file and generated keys", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "keys.txt")
		err := os.WriteFile(fileName, []byte("alpha\nbeta\n"), 0644)
		require.NoError(t, err, "writes key file")

		// Execute
		keys, err := collectKeys(Options{File: fileName, Generate: 3})

		// Check
		assert.NoError(t, err, "collects keys")
		assert.Len(t, keys, 5, "file and generated keys")
		assert.Equal(t, []string{"alpha", "beta"}, keys[:2], "file keys first")
	})

	t.Run("fails without any source", func(t *testing.T) {
		// Execute
		_, err := collectKeys(Options{})

		// Check
		assert.Error(t, err, "nothing to load")
	})

	t.Run("fails on missing file", func(t *testing.T) {
		// Execute
		_, err := collectKeys(Options{File: filepath.Join(t.TempDir(), "missing.txt")})

		// Check
		assert.Error(t, err, "missing file")
	})
}

func TestFill(t *testing.T) {
	t.Run("sets every key with its position", func(t *testing.T) {
		// Prepare
		table, err := hashtable.New[int]()
		require.NoError(t, err, "creates table")
		keys := append(generateKeys(40), "dup", "dup")

		// Execute
		err = fill(table, keys)

		// Check
		assert.NoError(t, err, "fills table")
		assert.Equal(t, int64(41), table.Len(), "duplicate counted once")
		v, ok := table.Get("dup")
		assert.True(t, ok, "duplicate found")
		assert.Equal(t, 41, v, "last position wins")
	})
}
