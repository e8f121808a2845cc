package hashtable

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/utils"
	"math"
	"strings"
)

// Get - Gets the value stored for key.
//   - key is compared byte by byte with stored keys
//
// It returns:
//   - value is the stored value if found, otherwise the zero value of V
//   - found is true if key is in the table
func (T *Table[V]) Get(key string) (value V, found bool) {
	if T.destroyed {
		return
	}

	index, err := T.probe(T.slots, key)
	if err != nil || !T.slots[index].InUse {
		return
	}

	return T.slots[index].Value, true
}

// Set - Updates the value of an existing key or adds the key if not found. An existing key keeps its slot and
// its stored copy, a new key is copied into the first empty slot of its probe sequence.
// The table grows first if it is already half full, and if that fails nothing is changed.
//   - key is the key to set, it is copied so the caller may reuse its memory
//   - value is stored as is and must not be nil
//
// It returns:
//   - storedKey is the copy of key owned by the table
//   - err is of type crt.InvalidArgument for a nil value, crt.OutOfMemory if the table couldn't grow,
//     crt.TableDestroyed after Destroy, or crt.ProbingAlgorithm if a custom hash algorithm misbehaves
func (T *Table[V]) Set(key string, value V) (storedKey string, err error) {
	if T.destroyed {
		err = crt.NewTableDestroyed(fmt.Sprintf("can not set key %q in a destroyed table", key))
		return
	}
	if utils.IsNil(value) {
		err = crt.NewInvalidArgument(fmt.Sprintf("value for key %q can not be nil", key))
		return
	}

	if T.length >= T.Cap()*conf.MaxLoadNumerator/conf.MaxLoadDenominator {
		var newCapacity int64
		newCapacity, err = T.nextCapacity()
		if err == nil {
			err = T.grow(newCapacity)
		}
		if err != nil {
			err = fmt.Errorf("error while making room for key %q: %w", key, err)
			return
		}
	}

	index, err := T.probe(T.slots, key)
	if err != nil {
		return
	}

	slot := &T.slots[index]
	if slot.InUse {
		slot.Value = value
		storedKey = slot.Key
		return
	}

	slot.InUse = true
	slot.Key = strings.Clone(key)
	slot.Value = value
	T.length++
	T.generation++
	storedKey = slot.Key

	return
}

// Grow - Makes sure the table has at least minCapacity slots, rounded up to the nearest exponent of 2.
// A table never shrinks, so asking for fewer slots than present does nothing.
//
// It returns:
//   - err is of type crt.OutOfMemory if the capacity is unreachable or couldn't be allocated, the table is then unchanged
func (T *Table[V]) Grow(minCapacity int64) (err error) {
	if T.destroyed {
		err = crt.NewTableDestroyed(fmt.Sprintf("can not grow a destroyed table to %d slots", minCapacity))
		return
	}
	if minCapacity <= T.Cap() {
		return
	}
	if minCapacity > conf.MaxCapacity {
		err = crt.NewOutOfMemory(fmt.Sprintf("capacity %d exceeds max capacity %d", minCapacity, conf.MaxCapacity))
		return
	}

	return T.grow(utils.RoundUp2(minCapacity))
}

// Keys - Returns all keys in slot order
func (T *Table[V]) Keys() (keys []string) {
	keys = make([]string, 0, T.length)
	for _, slot := range T.slots {
		if slot.InUse {
			keys = append(keys, slot.Key)
		}
	}

	return
}

// Stat - Walks through the entire set of slots and produces a Stat struct with information.
//   - includeDistribution set to true will include a slice with the number of keys per probe distance, false will set Stat.ProbeDistribution to nil.
func (T *Table[V]) Stat(includeDistribution bool) (stat Stat) {
	stat.Length = T.length
	stat.Capacity = T.Cap()
	if stat.Capacity == 0 {
		return
	}
	stat.LoadFactor = float64(stat.Length) / float64(stat.Capacity)
	if T.syncTableSize(stat.Capacity) != nil {
		return
	}

	distances := make([]int64, 0, T.length)
	var total int64
	for i, slot := range T.slots {
		if !slot.InUse {
			continue
		}

		distance := T.probeDistance(slot.Key, int64(i))
		distances = append(distances, distance)
		total += distance
		if distance > stat.MaxProbeDistance {
			stat.MaxProbeDistance = distance
		}
	}

	if len(distances) > 0 {
		stat.AverageProbeDistance = float64(total) / float64(len(distances))
	}

	if includeDistribution {
		stat.ProbeDistribution = make([]int64, stat.MaxProbeDistance+1)
		for _, distance := range distances {
			stat.ProbeDistribution[distance]++
		}
	}

	return
}

// nextCapacity - Returns the capacity after one step of growth
func (T *Table[V]) nextCapacity() (capacity int64, err error) {
	if T.Cap() > math.MaxInt64/T.growthFactor || T.Cap()*T.growthFactor > conf.MaxCapacity {
		err = crt.NewOutOfMemory(fmt.Sprintf("growing capacity %d by factor %d overflows", T.Cap(), T.growthFactor))
		return
	}
	capacity = T.Cap() * T.growthFactor

	return
}

// grow - Allocates a new slot array of given capacity and moves every entry into it. Keys are moved, not copied,
// and length is left as is. The table switches to the new array only once every entry is placed.
func (T *Table[V]) grow(capacity int64) (err error) {
	oldCapacity := T.Cap()

	slots, err := allocateSlots[V](capacity)
	if err != nil {
		return
	}

	T.hashAlgorithm.SetTableSize(capacity)
	defer func() {
		if err != nil {
			T.hashAlgorithm.SetTableSize(oldCapacity)
		}
	}()
	if T.hashAlgorithm.GetTableSize() != capacity {
		err = crt.NewProbingAlgorithm(fmt.Sprintf("hash algorithm reports table size %d, expected %d", T.hashAlgorithm.GetTableSize(), capacity))
		return
	}

	var index int64
	for _, slot := range T.slots {
		if !slot.InUse {
			continue
		}
		index, err = T.probe(slots, slot.Key)
		if err != nil {
			return
		}
		slots[index] = slot
	}

	T.slots = slots
	T.generation++

	return
}

// probe - Is the Linear Probing Collision Resolution Technique algorithm shared by get, set and grow.
// It returns the index of the first slot in the probe sequence of key that either holds key or is empty.
func (T *Table[V]) probe(slots []model.Slot[V], key string) (index int64, err error) {
	var n int64
	capacity := int64(len(slots))

	if err = T.syncTableSize(capacity); err != nil {
		return
	}

	hf1Value := T.hashAlgorithm.HashFunc1(key)

	iMax := capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		index = T.hashAlgorithm.ProbeIteration(hf1Value, i)
		if index < capacity && index >= 0 {
			if !slots[index].InUse || slots[index].Key == key {
				return
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= capacity {
				break
			}
		}
	}

	// Only reachable if the hash algorithm doesn't visit every slot, the load limit keeps empty slots around
	err = crt.ProbingAlgorithm{}
	return
}

// syncTableSize - Sets the hash algorithm back to capacity if something else, such as another table sharing the
// same instance, has resized it since this table last used it
func (T *Table[V]) syncTableSize(capacity int64) (err error) {
	if T.hashAlgorithm.GetTableSize() == capacity {
		return
	}

	T.hashAlgorithm.SetTableSize(capacity)
	if T.hashAlgorithm.GetTableSize() != capacity {
		err = crt.NewProbingAlgorithm(fmt.Sprintf("hash algorithm reports table size %d, expected %d", T.hashAlgorithm.GetTableSize(), capacity))
	}

	return
}

// probeDistance - Returns the number of probe iterations needed to reach index from the home slot of key
func (T *Table[V]) probeDistance(key string, index int64) (distance int64) {
	hf1Value := T.hashAlgorithm.HashFunc1(key)
	capacity := T.Cap()
	for i := int64(0); i < capacity*10; i++ {
		probe := T.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe == index {
			return
		}
		if probe < capacity && probe >= 0 {
			distance++
		}
	}

	return
}
