//go:build unit

package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestXXHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("masks the xxhash64 value", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(1024)

		for _, key := range []string{"", "alpha", "beta", "a much longer key with spaces"} {
			// Execute
			slot := h.HashFunc1(key)

			// Check
			assert.Equalf(t, int64(xxhash.Sum64String(key)&1023), slot, "low bits of xxhash for %q", key)
		}
	})
}

func TestXXHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("rounds table size up", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(100)

		// Execute and Check
		assert.Equal(t, int64(128), h.GetTableSize(), "rounded on creation")
		h.SetTableSize(256)
		assert.Equal(t, int64(256), h.GetTableSize(), "updated size")
	})
}

func TestXXHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("visits every slot once", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(32)
		slot := h.HashFunc1("key")
		visit := make([]int, 32)

		// Execute
		for i := int64(0); i < 32; i++ {
			visit[h.ProbeIteration(slot, i)]++
		}

		// Check
		for i := range visit {
			assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d", i)
		}
	})
}
