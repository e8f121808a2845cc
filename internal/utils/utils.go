package utils

import (
	"math/bits"
	"reflect"
)

// RoundUp2 - Returns n rounded up to the nearest exponent of 2, values lower than 1 give 1.
// The caller must keep n at or below 1<<62.
func RoundUp2(n int64) int64 {
	if n <= 1 {
		return 1
	}
	return 1 << (64 - bits.LeadingZeros64(uint64(n-1)))
}

// IsPowerOf2 - Returns true if n is a positive exponent of 2
func IsPowerOf2(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// IsNil - Returns true if value is nil or a nil pointer, map, slice, channel, function or interface
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
