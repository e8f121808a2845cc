package model

// Slot - Represents one slot in a table, either empty or occupied by a key and its value.
// The key is a copy owned by the table, the value is stored as given and never inspected.
type Slot[V any] struct {
	InUse bool
	Key   string
	Value V
}
