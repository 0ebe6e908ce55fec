// Package bitfield implements operations on wide bitfields: arrays of
// unsigned words treated as one logical bit-vector wider than a single
// machine word. Bit i of a bitfield bf lives in word i/W at in-word
// position i%W, where W is the bit width of the word type.
//
// The caller owns the word array. The package never allocates, copies or
// retains it, and performs no locking; concurrent access to one array
// needs external synchronization, disjoint arrays need none.
//
// Preconditions (in-range bit index, matching lengths for the bulk
// operations) are checked only in builds with the debug tag.
package bitfield

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/pi/bitfield/debug"
)

func wordBits[T constraints.Unsigned]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) << 3
}

// bitPos splits a global bit index into a word index and an in-word mask.
func bitPos[T constraints.Unsigned](bit uint) (uint, T) {
	w := wordBits[T]()
	return bit / w, T(1) << (bit & (w - 1))
}

// IsSet reports whether bit is set in bf.
func IsSet[T constraints.Unsigned](bf []T, bit uint) bool {
	debug.Assertf(bit < uint(len(bf))*wordBits[T](), "bit %d out of range", bit)
	wi, m := bitPos[T](bit)
	return bf[wi]&m != 0
}

// SetBit sets bit in bf to one. Idempotent, touches only the word
// holding the bit.
func SetBit[T constraints.Unsigned](bf []T, bit uint) {
	debug.Assertf(bit < uint(len(bf))*wordBits[T](), "bit %d out of range", bit)
	wi, m := bitPos[T](bit)
	bf[wi] |= m
}

// ClearBit clears bit in bf to zero. Idempotent, touches only the word
// holding the bit.
func ClearBit[T constraints.Unsigned](bf []T, bit uint) {
	debug.Assertf(bit < uint(len(bf))*wordBits[T](), "bit %d out of range", bit)
	wi, m := bitPos[T](bit)
	bf[wi] &^= m
}

// Xor stores a ^ b word by word into out. All three must have the same
// length; out may alias a or b.
func Xor[T constraints.Unsigned](a, b, out []T) {
	debug.Assert(len(a) == len(b) && len(b) == len(out), "bitfield length mismatch")
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
}

// And stores a & b word by word into out. All three must have the same
// length; out may alias a or b.
func And[T constraints.Unsigned](a, b, out []T) {
	debug.Assert(len(a) == len(b) && len(b) == len(out), "bitfield length mismatch")
	for i := range out {
		out[i] = a[i] & b[i]
	}
}
