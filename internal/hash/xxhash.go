package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/hashtable/internal/utils"
)

// XXHashAlgorithm - Alternative slot selection algorithm using xxhash64 over the key and the same linear
// probe sequence as LinearProbingHashAlgorithm. It spreads long keys better than FNV-1a at a similar cost.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size, rounded up to the nearest bigger exponent of 2
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (home slot) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key string) int64 {
	return int64(xxhash.Sum64String(key) & uint64(X.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}

// ProbeIteration - Implements Linear Probing
func (X *XXHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration) & (X.tableSize - 1)
}
