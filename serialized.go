package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// SerializedTree is the array form of a Huffman tree.  Slot 0 is the root,
// and the children of slot i are slots 2·i+1 (bit 0) and 2·i+2 (bit 1).  A
// slot either holds a leaf Symbol or is empty; internal nodes and unused
// positions are both empty.
type SerializedTree struct {
	slots   []Symbol
	present []byte
}

func newSerializedTree(numSlots int) *SerializedTree {
	return &SerializedTree{
		slots:   make([]Symbol, numSlots),
		present: make([]byte, bytesForBits(uint64(numSlots))),
	}
}

// Len returns the number of slots.
func (st *SerializedTree) Len() int {
	return len(st.slots)
}

// Leaf returns the Symbol in the slot at index and true, or (0, false) if the
// slot is empty.
func (st *SerializedTree) Leaf(index int) (Symbol, bool) {
	if st.present[index>>3]&(0x80>>(index&7)) == 0 {
		return 0, false
	}
	return st.slots[index], true
}

// NumLeaves returns the number of non-empty slots.
func (st *SerializedTree) NumLeaves() int {
	var n int
	for index := range st.slots {
		if _, ok := st.Leaf(index); ok {
			n++
		}
	}
	return n
}

func (st *SerializedTree) setLeaf(index int, symbol Symbol) {
	assert.Assertf(index > 0 && index < len(st.slots), "slot %d out of range [1, %d)", index, len(st.slots))
	st.slots[index] = symbol
	st.present[index>>3] |= 0x80 >> (index & 7)
}

// Codes reconstructs the Code of every leaf by walking the slot array.
// Symbols with no leaf have a zero-sized Code.
func (st *SerializedTree) Codes() [NumSymbols]Code {
	var codes [NumSymbols]Code

	type stackItem struct {
		index int
		hc    Code
	}

	if len(st.slots) == 0 {
		return codes
	}

	stack := []stackItem{{index: 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if symbol, ok := st.Leaf(top.index); ok {
			codes[symbol] = top.hc
			continue
		}
		left := int(childIndex(uint64(top.index), 0))
		right := left + 1
		if right < len(st.slots) {
			stack = append(stack, stackItem{index: right, hc: top.hc.Append(1)})
		}
		if left < len(st.slots) {
			stack = append(stack, stackItem{index: left, hc: top.hc.Append(0)})
		}
	}
	return codes
}

// Dump writes a programmer-readable debugging dump of the slot array to the
// given writer.
func (st *SerializedTree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("SerializedTree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(st.slots))
	for index := range st.slots {
		if symbol, ok := st.Leaf(index); ok {
			fmt.Fprintf(&buf, "\tLeaf(%d) = %d\n", index, symbol)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
