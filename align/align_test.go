package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pi/bitfield/th"
)

func TestIsPowerOfTwo(t *testing.T) {
	assert.False(t, IsPowerOfTwo(uint(0)))
	assert.True(t, IsPowerOfTwo(uint(1)))
	assert.True(t, IsPowerOfTwo(uint(2)))
	assert.False(t, IsPowerOfTwo(uint(3)))
	assert.True(t, IsPowerOfTwo(uint64(1)<<63))
	assert.False(t, IsPowerOfTwo(uint32(0xC0000000)))
}

func TestPow2Align(t *testing.T) {
	assert.Equal(t, uint(16), Pow2Align(uint(13), 8))
	assert.Equal(t, uint(16), Pow2Align(uint(16), 8))
	assert.Equal(t, uint(0), Pow2Align(uint(0), 64))
	assert.Equal(t, uint(8), Pow2AlignDown(uint(13), 8))
	assert.Equal(t, uint(16), Pow2AlignDown(uint(16), 8))
}

func TestIsPow2Aligned(t *testing.T) {
	assert.True(t, IsPow2Aligned(uint(64), 16))
	assert.False(t, IsPow2Aligned(uint(65), 16))
	assert.True(t, IsPow2Aligned(uint(0), 4096))
}

func TestPow2Pad(t *testing.T) {
	assert.Equal(t, uint(1), Pow2Pad(uint(0)))
	assert.Equal(t, uint(1), Pow2Pad(uint(1)))
	assert.Equal(t, uint(8), Pow2Pad(uint(5)))
	assert.Equal(t, uint(8), Pow2Pad(uint(8)))
	assert.Equal(t, uint(1024), Pow2Pad(uint(513)))
}

func TestLog2(t *testing.T) {
	// Log2(0) == 0 is a documented quirk, not an error.
	assert.Equal(t, uint(0), Log2(uint(0)))
	assert.Equal(t, uint(0), Log2(uint(1)))
	assert.Equal(t, uint(1), Log2(uint(2)))
	assert.Equal(t, uint(2), Log2(uint(4)))
	assert.Equal(t, uint(2), Log2(uint(5)))
	assert.Equal(t, uint(2), Log2(uint(7)))
	assert.Equal(t, uint(63), Log2(^uint64(0)))
}

func TestCeilLog2(t *testing.T) {
	assert.Equal(t, uint(0), CeilLog2(uint(0)))
	assert.Equal(t, uint(0), CeilLog2(uint(1)))
	assert.Equal(t, uint(1), CeilLog2(uint(2)))
	assert.Equal(t, uint(3), CeilLog2(uint(5)))
	assert.Equal(t, uint(3), CeilLog2(uint(8)))
	assert.Equal(t, uint(4), CeilLog2(uint(9)))
}

func TestRoundUpQuotient(t *testing.T) {
	assert.Equal(t, uint(3), RoundUpQuotient(uint(7), 3))
	assert.Equal(t, uint(1), RoundUpQuotient(uint(1), 64))
	assert.Equal(t, uint(2), RoundUpQuotient(uint(128), 64))
	assert.Equal(t, uint(0), RoundUpQuotient(uint(0), 5))
}

func TestRoundToMultiple(t *testing.T) {
	assert.Equal(t, uint(15), RoundUpToMultiple(uint(13), 5))
	assert.Equal(t, uint(15), RoundUpToMultiple(uint(15), 5))
	assert.Equal(t, uint(10), RoundDownToMultiple(uint(13), 5))
	assert.Equal(t, uint(15), RoundDownToMultiple(uint(15), 5))
}

func TestPow2AlignRandom(t *testing.T) {
	g := th.NewSeqGen(th.SgRand)
	for i := 0; i < 10000; i++ {
		v := g.Next() >> 8
		a := uint(1) << (g.Next() & 15)
		r := Pow2Align(v, a)
		assert.GreaterOrEqual(t, r, v)
		assert.Zero(t, r%a)
		assert.Less(t, r-v, a)

		d := Pow2AlignDown(v, a)
		assert.LessOrEqual(t, d, v)
		assert.Zero(t, d%a)
		assert.Less(t, v-d, a)
	}
}
