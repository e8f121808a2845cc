package hashfunc

// HashAlgorithm - Interface that permits a user of the hash table to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
// An instance should serve one table, since the table resizes it as it grows.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a table is created and every time it grows, always with a power of two. The old
	// size is set back if a resize has to be abandoned.
	//   - tableSize is the number of slots the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (home slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting.
	// It must equal the size given in the latest call to SetTableSize, the table refuses algorithms that round
	// the size to something else.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to visit in a given iteration given the value from HashFunc1.
	// Iteration 0 must return the home slot itself, and iterations 0 -> table size - 1 must visit every slot
	// exactly once, otherwise lookups may miss empty slots that are there.
	ProbeIteration(hf1Value, iteration int64) int64
}
