package huffman

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/nuclio/errors"
)

// Layout identifies a container layout.  Its value is the format tag written
// as the first byte of the container.
type Layout byte

const (
	// LayoutTagged stores an explicit presence bit for every tree slot and
	// can encode every byte value.
	LayoutTagged Layout = 'T'

	// LayoutSentinel marks empty tree slots with SentinelByte.  Inputs that
	// contain SentinelByte or TerminatorByte cannot be encoded.
	LayoutSentinel Layout = 'H'
)

const (
	// SentinelByte fills the non-leaf slots of a LayoutSentinel tree.
	SentinelByte = '$'

	// TerminatorByte ends the tree section of every layout.
	TerminatorByte = '\\'
)

// ParseLayout converts a layout name ("tagged" or "sentinel") into a Layout.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(name) {
	case "tagged":
		return LayoutTagged, nil
	case "sentinel":
		return LayoutSentinel, nil
	default:
		return 0, errors.Errorf("Unknown layout %q (expected \"tagged\" or \"sentinel\")", name)
	}
}

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutTagged:
		return "tagged"
	case LayoutSentinel:
		return "sentinel"
	default:
		return "unknown"
	}
}

// Container is a parsed encoded container.
type Container struct {
	Layout  Layout
	Length  uint32
	Tree    *SerializedTree
	Payload []byte
}

// MarshalBinary returns the wire form of the container.
func (c *Container) MarshalBinary() ([]byte, error) {
	numSlots := c.Tree.Len()

	var buf bytes.Buffer
	buf.Grow(1 + 4 + 4 + len(c.Tree.present) + numSlots + 1 + len(c.Payload))
	buf.WriteByte(byte(c.Layout))
	putUint32(&buf, c.Length)

	switch c.Layout {
	case LayoutTagged:
		putUint32(&buf, uint32(numSlots))
		buf.Write(c.Tree.present)
		for index := 0; index < numSlots; index++ {
			buf.WriteByte(byte(c.Tree.slots[index]))
		}

	case LayoutSentinel:
		for index := 0; index < numSlots; index++ {
			symbol, ok := c.Tree.Leaf(index)
			if !ok {
				buf.WriteByte(SentinelByte)
				continue
			}
			if symbol == SentinelByte || symbol == TerminatorByte {
				return nil, errors.Wrapf(ErrAlphabet,
					"Byte %q is reserved by the %s layout",
					byte(symbol),
					c.Layout)
			}
			buf.WriteByte(byte(symbol))
		}

	default:
		return nil, errors.Errorf("Unknown layout 0x%02x", byte(c.Layout))
	}

	buf.WriteByte(TerminatorByte)
	buf.Write(c.Payload)
	return buf.Bytes(), nil
}

// UnmarshalBinary parses the wire form of a container.  The payload is not
// decoded; Payload aliases data.
func (c *Container) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return errors.Wrap(ErrFormat, "Missing format tag")
	}

	layout := Layout(data[0])
	data = data[1:]

	if layout != LayoutTagged && layout != LayoutSentinel {
		return errors.Wrapf(ErrFormat, "Unrecognized format tag 0x%02x", byte(layout))
	}

	length, data, err := takeUint32(data, "original length")
	if err != nil {
		return err
	}

	var tree *SerializedTree
	switch layout {
	case LayoutTagged:
		tree, data, err = readTaggedTree(data)
	case LayoutSentinel:
		tree, data, err = readSentinelTree(data)
	}
	if err != nil {
		return err
	}

	if len(data) == 0 || data[0] != TerminatorByte {
		return errors.Wrap(ErrFormat, "Missing tree terminator")
	}

	*c = Container{
		Layout:  layout,
		Length:  length,
		Tree:    tree,
		Payload: data[1:],
	}
	return nil
}

func readTaggedTree(data []byte) (*SerializedTree, []byte, error) {
	numSlots, data, err := takeUint32(data, "slot count")
	if err != nil {
		return nil, nil, err
	}

	// Both sections must be present before anything is allocated.
	bitsetLen := bytesForBits(uint64(numSlots))
	if uint64(len(data)) < bitsetLen+uint64(numSlots) {
		return nil, nil, errors.Wrapf(ErrFormat,
			"Tree section truncated: %d slots need %d bytes, %d remain",
			numSlots,
			bitsetLen+uint64(numSlots),
			len(data))
	}

	tree := newSerializedTree(int(numSlots))
	copy(tree.present, data[:bitsetLen])
	data = data[bitsetLen:]
	for index := range tree.slots {
		tree.slots[index] = Symbol(data[index])
	}
	return tree, data[numSlots:], nil
}

func readSentinelTree(data []byte) (*SerializedTree, []byte, error) {
	numSlots := bytes.IndexByte(data, TerminatorByte)
	if numSlots < 0 {
		return nil, nil, errors.Wrap(ErrFormat, "Tree section truncated: no terminator")
	}

	tree := newSerializedTree(numSlots)
	for index := 0; index < numSlots; index++ {
		if b := data[index]; b != SentinelByte {
			if index == 0 {
				return nil, nil, errors.Wrap(ErrCorruption, "Serialized tree has a leaf in the root slot")
			}
			tree.setLeaf(index, Symbol(b))
		}
	}
	return tree, data[numSlots:], nil
}

func putUint32(buf *bytes.Buffer, value uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], value)
	buf.Write(tmp[:])
}

func takeUint32(data []byte, what string) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, errors.Wrapf(ErrFormat, "Header truncated while reading %s", what)
	}
	return binary.LittleEndian.Uint32(data), data[4:], nil
}
