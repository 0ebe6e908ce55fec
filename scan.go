package bitfield

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// WordScanForward scans a single word for its least-significant set bit.
// On success it stores the bit's index in *index and returns true. For a
// zero mask it stores 0 and returns false.
func WordScanForward[T constraints.Unsigned](index *uint, mask T) bool {
	if mask == 0 {
		*index = 0
		return false
	}
	*index = uint(bits.TrailingZeros64(uint64(mask)))
	return true
}

// ScanForward finds the first set bit in mask at or after *cursor and
// stores its global index back into *cursor, returning true. Bits below
// the cursor's in-word position are excluded, so re-invoking with
// *cursor = found+1 enumerates every set bit exactly once in ascending
// order:
//
//	for i := uint(0); bitfield.ScanForward(&i, mask); i++ {
//		use(i)
//	}
//
// When no set bit remains ScanForward returns false and resets *cursor
// to zero. A caller that ignores the return value will silently restart
// from the beginning; always check it.
func ScanForward[T constraints.Unsigned](cursor *uint, mask []T) bool {
	w := wordBits[T]()
	n := uint(len(mask))

	wi := *cursor / w
	if wi >= n {
		*cursor = 0
		return false
	}

	// Bits of the starting word below the cursor were already consumed.
	cur := mask[wi] &^ (T(1)<<(*cursor&(w-1)) - 1)
	for cur == 0 {
		wi++
		if wi >= n {
			*cursor = 0
			return false
		}
		cur = mask[wi]
	}

	*cursor = uint(bits.TrailingZeros64(uint64(cur))) + wi*w
	return true
}
