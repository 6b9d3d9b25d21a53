package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is bit (Size - 1) of Bits, i.e. the most significant of the
	// valid bits, and the last bit is the least significant bit.
	Bits uint64
}

// MaxCodeSize is the longest Code that can be represented.
const MaxCodeSize = 64

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one more bit at the end.
func (hc Code) Append(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | (bit & 1)}
}

// Bit returns the i'th bit of the sequence, counting from the first.
func (hc Code) Bit(i byte) uint64 {
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// IsPrefixOf returns true iff hc is a prefix of other.  Every Code is a
// prefix of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size > other.Size {
		return false
	}
	return (other.Bits >> (other.Size - hc.Size)) == hc.Bits
}

// Index returns the serialized tree slot reached by following this Code from
// the root.
func (hc Code) Index() uint64 {
	var index uint64
	for i := byte(0); i < hc.Size; i++ {
		index = childIndex(index, hc.Bit(i))
	}
	return index
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
