package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/nuclio/errors"
)

// Encoder maps each Symbol of an input to its Huffman Code.
type Encoder struct {
	tree       *Tree
	codes      [NumSymbols]Code
	numSymbols int
	minSize    byte
	maxSize    byte
}

// Init initializes this Encoder from the symbol frequencies of the input it
// will encode.  At least one symbol must have a non-zero frequency.
func (e *Encoder) Init(freqs *FrequencyTable) error {
	tree, err := BuildTree(freqs)
	if err != nil {
		return errors.Wrap(err, "Failed to build Huffman tree")
	}

	*e = Encoder{
		tree:       tree,
		codes:      tree.Codes(),
		numSymbols: tree.NumLeaves(),
	}

	var hasMinMax bool
	for _, hc := range e.codes {
		size := hc.Size
		if size == 0 {
			continue
		}
		if !hasMinMax {
			hasMinMax = true
			e.minSize = size
			e.maxSize = size
		} else if e.minSize > size {
			e.minSize = size
		} else if e.maxSize < size {
			e.maxSize = size
		}
	}
	return nil
}

// Tree returns the Huffman tree this Encoder was built from.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// Encode encodes a Symbol into a Huffman-coded bit string.  Symbols which
// did not occur in the input have a zero-sized Code.
func (e *Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// NumSymbols returns the number of symbols with a code.
func (e *Encoder) NumSymbols() int {
	return e.numSymbols
}

// TotalBits returns the number of payload bits needed to encode an input with
// the given frequencies.
func (e *Encoder) TotalBits(freqs *FrequencyTable) uint64 {
	var total uint64
	for symbol, hc := range e.codes {
		total += uint64(hc.Size) * freqs.Count(Symbol(symbol))
	}
	return total
}

// Serialize lays the code tree out as a SerializedTree.  maxDepth bounds the
// longest code; the slot array grows as 2^depth, so deeper trees are rejected
// with ErrInput.
func (e *Encoder) Serialize(maxDepth int) (*SerializedTree, error) {
	if int(e.maxSize) > maxDepth {
		return nil, errors.Wrapf(ErrInput,
			"Input needs a code tree of depth %d, which exceeds the limit of %d",
			e.maxSize,
			maxDepth)
	}

	var maxIndex uint64
	for _, hc := range e.codes {
		if hc.Size == 0 {
			continue
		}
		if index := hc.Index(); index > maxIndex {
			maxIndex = index
		}
	}

	st := newSerializedTree(int(maxIndex + 1))
	for symbol, hc := range e.codes {
		if hc.Size == 0 {
			continue
		}
		st.setLeaf(int(hc.Index()), Symbol(symbol))
	}
	return st, nil
}

// Pack writes the code of every byte of data, in order, as one MSB-first bit
// stream zero-padded to a whole byte.  It returns the packed bytes and the
// number of code bits, excluding padding.
func (e *Encoder) Pack(data []byte) ([]byte, uint64, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var numBits uint64
	for _, b := range data {
		hc := e.codes[b]
		assert.Assertf(hc.Size != 0, "no code for symbol %d", b)
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, 0, errors.Wrap(err, "Failed to write payload bits")
		}
		numBits += uint64(hc.Size)
	}

	if err := w.Close(); err != nil {
		return nil, 0, errors.Wrap(err, "Failed to flush payload bits")
	}

	assert.Assertf(uint64(buf.Len()) == bytesForBits(numBits),
		"packed %d bits into %d bytes", numBits, buf.Len())
	return buf.Bytes(), numBits, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
