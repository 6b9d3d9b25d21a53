package huffman

import (
	mathbits "math/bits"
)

// bytesForBits returns the number of whole bytes needed to hold n bits.
func bytesForBits(n uint64) uint64 {
	return (n + 7) >> 3
}

// childIndex returns the slot of the left (bit == 0) or right (bit == 1)
// child of the slot at index.
func childIndex(index uint64, bit uint64) uint64 {
	return 2*index + 1 + bit
}

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}
