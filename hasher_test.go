package Chain_Table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestHasher_Bounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.Int().Draw(t, "key")
		n := rapid.UintRange(1, 1<<24).Draw(t, "n")
		if i := Golden.Index(key, n); i >= n {
			t.Fatalf("Index(%d, %d) = %d", key, n, i)
		}
	})
}

func TestHasher_Edges(t *testing.T) {
	assert := assert.New(t)
	keys := []int{math.MinInt, math.MinInt + 1, -1, 0, 1, math.MaxInt}
	for n := uint(1); n <= 1<<20; n <<= 1 {
		for _, k := range keys {
			assert.Less(Golden.Index(k, n), n, "key %d n %d", k, n)
		}
	}
	assert.Zero(Golden.Index(12345, 0))
	assert.Zero(Golden.Index(12345, 1))
	assert.Zero(Golden.Index(0, 8))

	assert.Equal(uint(7), Hasher(math.Nextafter(1, 0)).Index(1, 8))
	// -1e-20 minus its floor rounds to exactly 1, which would be bucket n without the clamp.
	assert.Equal(uint(7), Hasher(1e-20).Index(-1, 8))
	assert.Equal(uint(1<<40-1), Hasher(1e-20).Index(-1, 1<<40))
}

func TestHasher_Spread(t *testing.T) {
	const n = 64
	var counts [n]int
	for k := 0; k < n*16; k++ {
		counts[Golden.Index(k, n)]++
	}
	for i, c := range counts {
		if c == 0 || c > 32 {
			t.Errorf("bucket %d got %d of %d sequential keys", i, c, n*16)
		}
	}
	assert.Equal(t, uint(1), Golden.Index(10, 8))
	assert.Equal(t, uint(7), Golden.Index(50, 8))
}

func TestBitArray_All(t *testing.T) {
	assert := assert.New(t)
	b := NewBitArray(70)
	assert.GreaterOrEqual(b.Len(), 70)
	assert.Equal(-1, b.First())
	b.Set(69)
	b.Set(3)
	assert.True(b.Get(3))
	assert.True(b.Get(69))
	assert.False(b.Get(4))
	assert.Equal(3, b.First())
	assert.Equal(2, b.Count())
	b.Clr(3)
	assert.Equal(69, b.First())

	b = b.Extend(500)
	assert.GreaterOrEqual(b.Len(), 500)
	assert.True(b.Get(69))
	b.Set(499)
	assert.Equal(2, b.Count())
	assert.Equal(b.Len(), b.Extend(10).Len())
}
