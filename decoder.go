package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/nuclio/errors"
)

// Decoder turns a packed payload back into bytes by walking a
// SerializedTree.
type Decoder struct {
	tree      *SerializedTree
	numLeaves int
}

// Init initializes this Decoder.  The tree is used as-is; it is walked
// directly rather than rebuilt into pointer form.
//
// A tree whose root slot holds a leaf is rejected: the root is never a leaf,
// even for single-symbol inputs, whose only leaf sits in slot 1.
//
func (d *Decoder) Init(tree *SerializedTree) error {
	if tree.Len() != 0 {
		if _, ok := tree.Leaf(0); ok {
			return errors.Wrap(ErrCorruption, "Serialized tree has a leaf in the root slot")
		}
	}

	*d = Decoder{
		tree:      tree,
		numLeaves: tree.NumLeaves(),
	}
	return nil
}

// Tree returns the SerializedTree this Decoder walks.
func (d *Decoder) Tree() *SerializedTree {
	return d.tree
}

// Decode reads codes from payload until length bytes have been produced.
//
// Each bit moves the walk from slot i to slot 2·i+1 (bit 0) or 2·i+2 (bit 1);
// reaching a leaf emits its Symbol and restarts the walk at the root.  Bits
// after the last code are padding and are discarded, but the payload must not
// extend past the byte holding the last code bit.
//
func (d *Decoder) Decode(payload []byte, length int) ([]byte, error) {
	if length == 0 {
		if len(payload) != 0 {
			return nil, errors.Wrapf(ErrFormat, "Expected an empty payload, got %d bytes", len(payload))
		}
		return []byte{}, nil
	}

	// Every code is at least one bit long.
	if uint64(length) > 8*uint64(len(payload)) {
		return nil, errors.Wrapf(ErrFormat,
			"Payload of %d bytes is too short for %d output bytes",
			len(payload),
			length)
	}

	out := make([]byte, 0, length)

	numSlots := uint64(d.tree.Len())
	r := bitio.NewReader(bytes.NewReader(payload))

	var numBits uint64
	var index uint64
	for len(out) < length {
		bit, err := r.ReadBool()
		if err == io.EOF {
			return nil, errors.Wrapf(ErrFormat,
				"Payload truncated after %d of %d bytes",
				len(out),
				length)
		}
		if err != nil {
			return nil, errors.Wrap(err, "Failed to read payload bits")
		}
		numBits++

		var b uint64
		if bit {
			b = 1
		}
		index = childIndex(index, b)
		if index >= numSlots {
			return nil, errors.Wrapf(ErrCorruption,
				"Tree walk reached slot %d of %d after %d of %d bytes",
				index,
				numSlots,
				len(out),
				length)
		}

		if symbol, ok := d.tree.Leaf(int(index)); ok {
			out = append(out, byte(symbol))
			index = 0
		}
	}

	if expected := bytesForBits(numBits); uint64(len(payload)) != expected {
		return nil, errors.Wrapf(ErrFormat,
			"Payload holds %d bytes, but its %d code bits need %d",
			len(payload),
			numBits,
			expected)
	}

	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", d.numLeaves)
	codes := d.tree.Codes()
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, symbol)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// NumLeaves returns the number of symbols the tree can decode to.
func (d *Decoder) NumLeaves() int {
	return d.numLeaves
}
