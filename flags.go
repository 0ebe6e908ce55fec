package bitfield

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// AnyFlagSet reports whether any bit set in test is also set in src.
func AnyFlagSet[T constraints.Unsigned](src, test T) bool {
	return src&test != 0
}

// AllFlagsSet reports whether all bits set in test are also set in src.
func AllFlagsSet[T constraints.Unsigned](src, test T) bool {
	return src&test == test
}

// CountSetBits returns the number of one bits in v.
func CountSetBits[T constraints.Unsigned](v T) uint {
	return uint(bits.OnesCount64(uint64(v)))
}

// HighPart returns the high 32 bits of v.
func HighPart(v uint64) uint32 {
	return uint32(v >> 32)
}

// LowPart returns the low 32 bits of v.
func LowPart(v uint64) uint32 {
	return uint32(v)
}
