package hashtable

import (
	"fmt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/utils"
	"github.com/hashicorp/go-multierror"
)

// Conf - Is a struct to be passed in the call to NewWithConf and contains configuration that affects
// how the table is sized and hashed. Zero values give the defaults.
//   - InitialCapacity is the number of slots to start with, it is rounded up to the nearest exponent of 2 (default 16)
//   - GrowthFactor is what the capacity is multiplied with each time the table grows, must be an exponent of 2 (default 2)
//   - HashAlgorithm is the slot selection algorithm to use (default FNV-1a with linear probing). The table resizes
//     it as it grows, so give each table its own instance. A shared instance is set back to the right size before
//     every lookup, which keeps sequential use correct but is not safe across goroutines.
type Conf struct {
	InitialCapacity int64
	GrowthFactor    int64
	HashAlgorithm   hashfunc.HashAlgorithm
}

// Validate - Checks the configuration and returns every problem found, or nil if it can be used
func (C Conf) Validate() error {
	var result *multierror.Error

	if C.InitialCapacity < 0 {
		result = multierror.Append(result, fmt.Errorf("initial capacity can not be negative, got %d", C.InitialCapacity))
	}
	if C.InitialCapacity > conf.MaxCapacity {
		result = multierror.Append(result, fmt.Errorf("initial capacity can not exceed %d, got %d", conf.MaxCapacity, C.InitialCapacity))
	}
	if C.GrowthFactor != 0 && (C.GrowthFactor < 2 || !utils.IsPowerOf2(C.GrowthFactor)) {
		result = multierror.Append(result, fmt.Errorf("growth factor must be an exponent of 2 and at least 2, got %d", C.GrowthFactor))
	}

	return result.ErrorOrNil()
}

// withDefaults - Returns a copy of the configuration where zero values are replaced by defaults
func (C Conf) withDefaults() Conf {
	if C.InitialCapacity == 0 {
		C.InitialCapacity = conf.DefaultInitialCapacity
	}
	C.InitialCapacity = utils.RoundUp2(C.InitialCapacity)
	if C.GrowthFactor == 0 {
		C.GrowthFactor = conf.DefaultGrowthFactor
	}
	if C.HashAlgorithm == nil {
		C.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(C.InitialCapacity)
	}

	return C
}

// NewFNV1aHashAlgorithm - Returns the default slot selection algorithm: FNV-1a 64 bit with linear probing.
func NewFNV1aHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewLinearProbingHashAlgorithm(conf.DefaultInitialCapacity)
}

// NewXXHashAlgorithm - Returns a slot selection algorithm using xxhash64 with linear probing.
func NewXXHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewXXHashAlgorithm(conf.DefaultInitialCapacity)
}
