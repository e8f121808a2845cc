package hashtable

import "sync"

// SyncTable - A Table guarded by a read/write mutex, safe for concurrent use.
// Lookups share the lock, Set, Grow and Destroy take it exclusively.
type SyncTable[V any] struct {
	mu    sync.RWMutex
	table *Table[V]
}

// NewSyncTable - Returns a new empty synchronized table configured by conf, see NewWithConf
func NewSyncTable[V any](conf Conf) (*SyncTable[V], error) {
	table, err := NewWithConf[V](conf)
	if err != nil {
		return nil, err
	}

	return &SyncTable[V]{table: table}, nil
}

// Get - See Table.Get
func (S *SyncTable[V]) Get(key string) (V, bool) {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.table.Get(key)
}

// Set - See Table.Set
func (S *SyncTable[V]) Set(key string, value V) (string, error) {
	S.mu.Lock()
	defer S.mu.Unlock()

	return S.table.Set(key, value)
}

// Grow - See Table.Grow
func (S *SyncTable[V]) Grow(minCapacity int64) error {
	S.mu.Lock()
	defer S.mu.Unlock()

	return S.table.Grow(minCapacity)
}

// Len - See Table.Len
func (S *SyncTable[V]) Len() int64 {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.table.Len()
}

// Cap - See Table.Cap
func (S *SyncTable[V]) Cap() int64 {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.table.Cap()
}

// Keys - See Table.Keys
func (S *SyncTable[V]) Keys() []string {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.table.Keys()
}

// Stat - See Table.Stat
func (S *SyncTable[V]) Stat(includeDistribution bool) Stat {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.table.Stat(includeDistribution)
}

// Range - Calls fn for every entry while holding the read lock, so no writer can interleave.
// fn must not call Set, Grow or Destroy on the same SyncTable, it would deadlock.
func (S *SyncTable[V]) Range(fn func(key string, value V) bool) error {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.table.Range(fn)
}

// Destroy - See Table.Destroy
func (S *SyncTable[V]) Destroy() {
	S.mu.Lock()
	defer S.mu.Unlock()

	S.table.Destroy()
}
