//go:build unit

package main

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestReadKeys(t *testing.T) {
	t.Run("reads one key per line", func(t *testing.T) {
		// Prepare
		r := strings.NewReader("alpha\r\nbeta\n\ngamma with spaces\n")

		// Execute
		keys, err := readKeys(r)

		// Check
		assert.NoError(t, err, "reads keys")
		assert.Equal(t, []string{"alpha", "beta", "gamma with spaces"}, keys, "blank lines skipped, endings trimmed")
	})

	t.Run("reads nothing from empty input", func(t *testing.T) {
		// Execute
		keys, err := readKeys(strings.NewReader(""))

		// Check
		assert.NoError(t, err, "reads keys")
		assert.Empty(t, keys, "no keys")
	})
}

func TestGenerateKeys(t *testing.T) {
	t.Run("generates unique uuid keys", func(t *testing.T) {
		// Execute
		keys := generateKeys(100)

		// Check
		assert.Len(t, keys, 100, "correct amount")
		seen := make(map[string]bool)
		for _, key := range keys {
			_, err := uuid.Parse(key)
			assert.NoErrorf(t, err, "%s is a uuid", key)
			assert.Falsef(t, seen[key], "%s is unique", key)
			seen[key] = true
		}
	})

	t.Run("generates nothing for zero", func(t *testing.T) {
		// Execute and Check
		assert.Nil(t, generateKeys(0), "no keys")
	})
}
