package hash

import (
	"github.com/gostonefire/hashtable/internal/utils"
)

const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// LinearProbingHashAlgorithm - The internally used slot selection algorithm is implemented using FNV-1a 64 bit to
// create a hash value over the key and then applying slot = hash & (tableSize - 1) to get the home slot,
// where tableSize is always an exponent of 2.
type LinearProbingHashAlgorithm struct {
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
// It sets an initial value for the table size but the table updates it every time it grows.
func NewLinearProbingHashAlgorithm(tableSize int64) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (home slot) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(key string) int64 {
	return int64(FNV1a64(key) & uint64(L.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration) & (L.tableSize - 1)
}

// FNV1a64 - Returns the 64 bit FNV-1a hash of key
func FNV1a64(key string) uint64 {
	h := fnvOffset64
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime64
	}
	return h
}
