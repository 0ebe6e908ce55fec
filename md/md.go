// Package md holds machine-dependent word size constants for code that
// works on plain uint words.
package md

const UintSizeShift = 5 + (^uint(0) >> 63)
const BitsPerUint = 1 << UintSizeShift
const BytesPerUint = BitsPerUint / 8
const UintSizeMask = BitsPerUint - 1
