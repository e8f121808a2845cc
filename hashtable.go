// Package hashtable implements an in-memory table from string keys to caller owned values, using open
// addressing with linear probing.
//
// A Table keeps at least half of its slots empty. Before an insertion that would break that, it grows by its
// growth factor and rehashes every entry. There is no deletion.
//
// A Table is not safe for concurrent use. Callers must serialize every access, reads included, or use
// SyncTable which does it for them.
package hashtable

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/model"
	"math"
	"unsafe"
)

// Table - The main implementation struct.
// Keys are copied into the table and owned by it. Values are stored as given, the table never copies,
// inspects or releases what they refer to.
type Table[V any] struct {
	slots         []model.Slot[V]
	length        int64
	generation    uint64
	growthFactor  int64
	hashAlgorithm hashfunc.HashAlgorithm
	destroyed     bool
}

// Stat - Statistics on the overall usage and distribution of probe distances
//   - Length is the number of keys stored
//   - Capacity is the number of slots available
//   - LoadFactor is Length divided by Capacity
//   - MaxProbeDistance is the largest number of steps any key sits away from its home slot
//   - AverageProbeDistance is the average number of steps keys sit away from their home slot
//   - ProbeDistribution is the number of keys for each probe distance (index), nil if not asked for
type Stat struct {
	Length               int64
	Capacity             int64
	LoadFactor           float64
	MaxProbeDistance     int64
	AverageProbeDistance float64
	ProbeDistribution    []int64
}

// New - Returns a new empty table with default configuration: 16 slots, doubling when half full, FNV-1a hashing.
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is of type crt.OutOfMemory if the slot array could not be allocated
func New[V any]() (table *Table[V], err error) {
	return NewWithConf[V](Conf{})
}

// NewWithConf - Returns a new empty table configured by conf.
//   - conf is a Conf struct, zero values in it are replaced by defaults
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is of type crt.InvalidArgument if conf doesn't validate, crt.ProbingAlgorithm if a given hash algorithm
//     doesn't accept the capacity, or crt.OutOfMemory if the slot array could not be allocated
func NewWithConf[V any](conf Conf) (table *Table[V], err error) {
	if err = conf.Validate(); err != nil {
		err = fmt.Errorf("%w: %s", crt.NewInvalidArgument("invalid table configuration"), err)
		return
	}
	conf = conf.withDefaults()

	conf.HashAlgorithm.SetTableSize(conf.InitialCapacity)
	if conf.HashAlgorithm.GetTableSize() != conf.InitialCapacity {
		err = crt.NewProbingAlgorithm(fmt.Sprintf("hash algorithm reports table size %d, expected %d", conf.HashAlgorithm.GetTableSize(), conf.InitialCapacity))
		return
	}

	slots, err := allocateSlots[V](conf.InitialCapacity)
	if err != nil {
		return
	}

	table = &Table[V]{
		slots:         slots,
		growthFactor:  conf.GrowthFactor,
		hashAlgorithm: conf.HashAlgorithm,
	}

	return
}

// Destroy - Releases the slot array together with every key copy. Any later Set or Grow fails with
// crt.TableDestroyed, Get finds nothing and iterators stop with crt.TableDestroyed.
func (T *Table[V]) Destroy() {
	T.slots = nil
	T.length = 0
	T.destroyed = true
	T.generation++
}

// Len - Returns the number of keys in the table
func (T *Table[V]) Len() int64 {
	return T.length
}

// Cap - Returns the number of slots in the table, zero once destroyed
func (T *Table[V]) Cap() int64 {
	return int64(len(T.slots))
}

// allocateSlots - Returns a new zeroed slot array of given capacity.
// Capacities whose array size can't be expressed, and allocations the runtime refuses with a panic,
// are returned as crt.OutOfMemory.
func allocateSlots[V any](capacity int64) (slots []model.Slot[V], err error) {
	var slot model.Slot[V]
	slotSize := int64(unsafe.Sizeof(slot))
	if capacity <= 0 || capacity > math.MaxInt/slotSize {
		err = crt.NewOutOfMemory(fmt.Sprintf("unable to allocate %d slots of %d bytes", capacity, slotSize))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			slots = nil
			err = crt.NewOutOfMemory(fmt.Sprintf("unable to allocate %d slots: %v", capacity, r))
		}
	}()

	slots = make([]model.Slot[V], capacity)

	return
}
