package hashtable

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
)

// Iterator - Is used to iterate over the entries of a table one by one, in slot order.
// The order is not insertion order and changes when the table grows.
// Adding a key to the table or growing it while iterating stops the iterator with crt.ConcurrentModification,
// updating the value of an existing key does not.
type Iterator[V any] struct {
	table      *Table[V]
	index      int64
	generation uint64
	key        string
	value      V
	done       bool
	err        error
}

// Iterator - Returns a pointer to a new Iterator positioned before the first entry of the table
func (T *Table[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{
		table:      T,
		generation: T.generation,
	}
}

// Next - Moves to the next entry and returns true, or returns false when there are no more entries or the table
// was changed since the iterator was created. Check Err after Next has returned false.
func (I *Iterator[V]) Next() bool {
	if I.done {
		return false
	}

	if I.table.destroyed {
		I.stop(crt.TableDestroyed{})
		return false
	}
	if I.table.generation != I.generation {
		I.stop(crt.NewConcurrentModification(fmt.Sprintf("table changed during iteration (generation %d, iterator created at %d)", I.table.generation, I.generation)))
		return false
	}

	for I.index < I.table.Cap() {
		slot := I.table.slots[I.index]
		I.index++
		if slot.InUse {
			I.key = slot.Key
			I.value = slot.Value
			return true
		}
	}

	I.stop(nil)
	return false
}

// Key - Returns the key of the current entry
func (I *Iterator[V]) Key() string {
	return I.key
}

// Value - Returns the value of the current entry
func (I *Iterator[V]) Value() V {
	return I.value
}

// Err - Returns the error that stopped the iterator, nil if it simply ran out of entries
func (I *Iterator[V]) Err() error {
	return I.err
}

// stop - Puts the iterator in its terminal state
func (I *Iterator[V]) stop(err error) {
	var zero V
	I.done = true
	I.err = err
	I.key = ""
	I.value = zero
}

// Range - Calls fn for every entry in slot order until fn returns false.
// fn must not add keys to the table, doing so stops the walk with crt.ConcurrentModification.
func (T *Table[V]) Range(fn func(key string, value V) bool) (err error) {
	iter := T.Iterator()
	for iter.Next() {
		if !fn(iter.Key(), iter.Value()) {
			return
		}
	}

	return iter.Err()
}
