package bitarray

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitArray(t *testing.T) {
	a := New(bits.UintSize + 1)
	assert.Equal(t, 2*bits.UintSize, a.Len())
	for _, i := range []int{0, 3, bits.UintSize - 1, bits.UintSize} {
		assert.False(t, a.Get(i))
		a.Up(i)
		assert.True(t, a.Get(i))
	}
	assert.Equal(t, 4, a.Count())
	a.Down(3)
	assert.False(t, a.Get(3))
	assert.True(t, a.Get(bits.UintSize))
	assert.Equal(t, 3, a.Count())
}

func TestNewEmpty(t *testing.T) {
	a := New(0)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Count())
}
