// Package align provides power-of-two and multiple alignment arithmetic
// for unsigned integers. All functions are pure; preconditions are
// checked only in builds with the debug tag.
package align

import (
	"golang.org/x/exp/constraints"

	"github.com/pi/bitfield/debug"
)

// IsPowerOfTwo reports whether v is a power of two. Zero is not.
func IsPowerOfTwo[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// IsPow2Aligned reports whether value is a multiple of alignment, which
// must be a power of two.
func IsPow2Aligned[T constraints.Unsigned](value, alignment T) bool {
	debug.Assert(IsPowerOfTwo(alignment), "alignment must be a power of two")
	return value&(alignment-1) == 0
}

// Pow2Align rounds value up to the nearest multiple of alignment, which
// must be a power of two.
func Pow2Align[T constraints.Unsigned](value, alignment T) T {
	debug.Assert(IsPowerOfTwo(alignment), "alignment must be a power of two")
	return (value + alignment - 1) &^ (alignment - 1)
}

// Pow2AlignDown rounds value down to the nearest multiple of alignment,
// which must be a power of two.
func Pow2AlignDown[T constraints.Unsigned](value, alignment T) T {
	debug.Assert(IsPowerOfTwo(alignment), "alignment must be a power of two")
	return value &^ (alignment - 1)
}

// Pow2Pad rounds v up to the nearest power of two. Pow2Pad(0) is 1.
func Pow2Pad[T constraints.Unsigned](v T) T {
	if IsPowerOfTwo(v) {
		return v
	}
	r := T(1)
	for r < v {
		r <<= 1
	}
	return r
}

// Log2 returns the floor of the base-2 logarithm of u by repeated shift.
// Log2(0) returns 0, not an error.
func Log2[T constraints.Unsigned](u T) uint {
	var n uint
	for u > 1 {
		n++
		u >>= 1
	}
	return n
}

// CeilLog2 returns the smallest n with 1<<n >= u.
func CeilLog2[T constraints.Unsigned](u T) uint {
	n := Log2(u)
	if u > 1 && !IsPowerOfTwo(u) {
		n++
	}
	return n
}

// RoundUpQuotient returns dividend divided by divisor, rounded up.
// divisor must be nonzero.
func RoundUpQuotient[T constraints.Unsigned](dividend, divisor T) T {
	return (dividend + divisor - 1) / divisor
}

// RoundUpToMultiple rounds v up to the nearest multiple of m. Unlike
// Pow2Align, m need not be a power of two.
func RoundUpToMultiple[T constraints.Unsigned](v, m T) T {
	return ((v + m - 1) / m) * m
}

// RoundDownToMultiple rounds v down to the nearest multiple of m.
func RoundDownToMultiple[T constraints.Unsigned](v, m T) T {
	return (v / m) * m
}
