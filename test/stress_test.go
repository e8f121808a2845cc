//go:build stress

package test

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/gostonefire/hashtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"sync"
	"testing"
)

func createTestdata(amount int) (keys []string, values map[string]int) {
	keys = make([]string, amount)
	values = make(map[string]int, amount)
	for i := 0; i < amount; i++ {
		keys[i] = uuid.NewString()
		values[keys[i]] = i
	}
	return
}

func setTestdata(table *hashtable.Table[int], keys []string, values map[string]int) error {
	for _, key := range keys {
		if _, err := table.Set(key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

func TestStressTable(t *testing.T) {
	algorithms := map[string]func() hashtable.Conf{
		"fnv1a":  func() hashtable.Conf { return hashtable.Conf{} },
		"xxhash": func() hashtable.Conf { return hashtable.Conf{HashAlgorithm: hashtable.NewXXHashAlgorithm()} },
	}

	for name, newConf := range algorithms {
		t.Run(fmt.Sprintf("sets and gets 200000 uuid keys with %s", name), func(t *testing.T) {
			// Prepare
			keys, values := createTestdata(200000)
			table, err := hashtable.NewWithConf[int](newConf())
			require.NoError(t, err, "creates table")

			// Execute
			err = setTestdata(table, keys, values)
			require.NoError(t, err, "sets test data")

			// Update a random half
			for i := 0; i < len(keys)/2; i++ {
				key := keys[rand.Intn(len(keys))]
				values[key] = -values[key]
				_, err = table.Set(key, values[key])
				require.NoError(t, err, "updates key")
			}

			// Check
			assert.Equal(t, int64(len(keys)), table.Len(), "length equals distinct keys")
			for _, key := range keys {
				v, ok := table.Get(key)
				if !ok || v != values[key] {
					assert.Failf(t, "wrong mapping", "key %s: got %d (found %t), want %d", key, v, ok, values[key])
					break
				}
			}

			count := 0
			err = table.Range(func(key string, value int) bool {
				count++
				return value == values[key]
			})
			assert.NoError(t, err, "ranges")
			assert.Equal(t, len(keys), count, "every entry ranged with correct value")

			stat := table.Stat(false)
			assert.LessOrEqual(t, stat.LoadFactor, 0.5, "load stays at most half")
			t.Logf("%s: capacity %d, max probe %d, average probe %.3f", name, stat.Capacity, stat.MaxProbeDistance, stat.AverageProbeDistance)

			table.Destroy()
		})
	}
}

func TestStressSyncTable(t *testing.T) {
	t.Run("concurrent writers and readers on uuid keys", func(t *testing.T) {
		// Prepare
		const workers = 16
		keys, values := createTestdata(workers * 10000)
		table, err := hashtable.NewSyncTable[int](hashtable.Conf{})
		require.NoError(t, err, "creates table")

		// Execute
		var wg sync.WaitGroup
		chunk := len(keys) / workers
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(part []string) {
				defer wg.Done()
				for i, key := range part {
					if _, err := table.Set(key, values[key]); err != nil {
						assert.NoError(t, err, "sets key")
						return
					}
					if i%10 == 0 {
						_, _ = table.Get(part[rand.Intn(i+1)])
					}
				}
			}(keys[w*chunk : (w+1)*chunk])
		}
		wg.Wait()

		// Check
		assert.Equal(t, int64(len(keys)), table.Len(), "every key stored")
		for _, key := range keys {
			v, ok := table.Get(key)
			if !ok || v != values[key] {
				assert.Failf(t, "wrong mapping", "key %s: got %d (found %t), want %d", key, v, ok, values[key])
				break
			}
		}
	})
}
