// Package conv provides checked integer conversions for the matcher.
//
// Offsets are stored as uint32 inside sparse sets. These helpers panic on
// overflow because an input longer than the offset space is a caller error,
// not a match failure.
package conv

import "math"

// MaxOffset is the largest input offset the matcher can represent.
const MaxOffset = math.MaxUint32 - 1

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// OffsetCapacity returns the sparse-set capacity needed to hold every offset
// of an input of length n, i.e. n+1.
// Panics if the input is too long to address.
func OffsetCapacity(n int) uint32 {
	if n < 0 || uint(n) > MaxOffset {
		panic("integer overflow: input length out of offset range")
	}
	return uint32(n) + 1
}
