package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nuclio/errors"
)

func makeTestDecoder() Decoder {
	e := makeTestEncoder()
	st, err := e.Serialize(DefaultMaxTreeDepth)
	if err != nil {
		panic(err)
	}

	var d Decoder
	if err := d.Init(st); err != nil {
		panic(err)
	}
	return d
}

func makeTwoLeafTree() *SerializedTree {
	st := newSerializedTree(3)
	st.setLeaf(1, 'b')
	st.setLeaf(2, 'a')
	return st
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tNumLeaves() = 6\n",
		"\tDecode(\"1100\") = 0\n",
		"\tDecode(\"1101\") = 1\n",
		"\tDecode(\"100\") = 2\n",
		"\tDecode(\"101\") = 3\n",
		"\tDecode(\"111\") = 4\n",
		"\tDecode(\"0\") = 5\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_Decode(t *testing.T) {
	var d Decoder
	if err := d.Init(makeTwoLeafTree()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	actual, err := d.Decode([]byte{0xe0}, 4)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if expect := []byte("aaab"); !bytes.Equal(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestDecoder_DecodeMultiByte(t *testing.T) {
	d := makeTestDecoder()

	// 5 "0", 4 "111", 0 "1100", 2 "100", 1 "1101", 3 "101" => 01111100 10011011 01(000000)
	payload := []byte{0x7c, 0x9b, 0x40}
	actual, err := d.Decode(payload, 6)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if expect := []byte{5, 4, 0, 2, 1, 3}; !bytes.Equal(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
}

func TestDecoder_Errors(t *testing.T) {
	type testRow struct {
		name    string
		tree    *SerializedTree
		payload []byte
		length  int
		expect  error
	}

	oneLeaf := newSerializedTree(3)
	oneLeaf.setLeaf(1, 'a')

	sixLeafDecoder := makeTestDecoder()
	sixLeaves := sixLeafDecoder.Tree()

	testData := [...]testRow{
		{name: "walk-off-tree", tree: oneLeaf, payload: []byte{0x80}, length: 1, expect: ErrCorruption},
		{name: "empty-tree", tree: newSerializedTree(0), payload: []byte{0x00}, length: 1, expect: ErrCorruption},
		{name: "truncated", tree: makeTwoLeafTree(), payload: []byte{0xff}, length: 9, expect: ErrFormat},
		{name: "eof-mid-code", tree: sixLeaves, payload: []byte{0xff}, length: 8, expect: ErrFormat},
		{name: "too-short", tree: makeTwoLeafTree(), payload: []byte{0xff}, length: 100, expect: ErrFormat},
		{name: "trailing", tree: makeTwoLeafTree(), payload: []byte{0xe0, 0x00}, length: 4, expect: ErrFormat},
		{name: "empty-with-payload", tree: newSerializedTree(0), payload: []byte{0x00}, length: 0, expect: ErrFormat},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var d Decoder
			if err := d.Init(row.tree); err != nil {
				t.Fatalf("Init failed: %v", err)
			}

			out, err := d.Decode(row.payload, row.length)
			if err == nil {
				t.Fatalf("expected an error, got %q", out)
			}
			if out != nil {
				t.Errorf("expected no output on failure, got %q", out)
			}
			if cause := errors.RootCause(err); cause != row.expect {
				t.Errorf("expected %v, got %v", row.expect, cause)
			}
		})
	}
}

func TestDecoder_RootLeaf(t *testing.T) {
	st := newSerializedTree(3)
	st.slots[0] = 'x'
	st.present[0] |= 0x80

	var d Decoder
	err := d.Init(st)
	if err == nil {
		t.Fatalf("expected Init to reject a leaf in the root slot")
	}
	if cause := errors.RootCause(err); cause != ErrCorruption {
		t.Errorf("expected ErrCorruption, got %v", cause)
	}
}
