package Chain_Table

import (
	"math/bits"
)

// NewBitArray holds at least size bits, all cleared.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// First set bit, or -1 if none is set.
func (u BitArray) First() int {
	for i, w := range u.bits {
		if w != 0 {
			return i*bits.UintSize + bits.TrailingZeros(w)
		}
	}
	return -1
}

// Count of set bits.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}

// Extend returns a BitArray holding at least size bits. Existing bits are kept; the receiver may share storage with the result.
func (u BitArray) Extend(size int) BitArray {
	for u.Len() < size {
		u.bits = append(u.bits, 0)
	}
	return u
}
