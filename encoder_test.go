package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nuclio/errors"
)

func makeTestEncoder() Encoder {
	var e Encoder
	err := e.Init(makeFrequencyTable(map[Symbol]uint64{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45}))
	if err != nil {
		panic(err)
	}
	return e
}

func TestEncoder(t *testing.T) {
	e := makeTestEncoder()

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if actual := e.NumSymbols(); actual != 6 {
		t.Errorf("expected 6 symbols, got %d", actual)
	}
	if actual := e.Encode(200); actual.Size != 0 {
		t.Errorf("expected no code for an absent symbol, got %s", actual)
	}
}

func TestEncoder_PrefixFree(t *testing.T) {
	e := makeTestEncoder()

	for a := 0; a < NumSymbols; a++ {
		ha := e.Encode(Symbol(a))
		if ha.Size == 0 {
			continue
		}
		for b := 0; b < NumSymbols; b++ {
			hb := e.Encode(Symbol(b))
			if a == b || hb.Size == 0 {
				continue
			}
			if ha.IsPrefixOf(hb) {
				t.Errorf("code %s of %d is a prefix of code %s of %d", ha, a, hb, b)
			}
		}
	}
}

func TestEncoder_Serialize(t *testing.T) {
	e := makeTestEncoder()

	st, err := e.Serialize(DefaultMaxTreeDepth)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"SerializedTree{\n",
		"\tLen() = 29\n",
		"\tLeaf(1) = 5\n",
		"\tLeaf(11) = 2\n",
		"\tLeaf(12) = 3\n",
		"\tLeaf(14) = 4\n",
		"\tLeaf(27) = 0\n",
		"\tLeaf(28) = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = st.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	// the array form must describe the same code as the tree it came from
	codes := st.Codes()
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if expect := e.Encode(Symbol(symbol)); codes[symbol] != expect {
			t.Errorf("symbol %d: expected %s, got %s", symbol, expect, codes[symbol])
		}
	}
}

func TestEncoder_SerializeTooDeep(t *testing.T) {
	e := makeTestEncoder()

	_, err := e.Serialize(3)
	if err == nil {
		t.Fatalf("expected an error for a depth limit below MaxSize()")
	}
	if errors.RootCause(err) != ErrInput {
		t.Errorf("expected ErrInput, got %v", errors.RootCause(err))
	}
}

func TestEncoder_Pack(t *testing.T) {
	var e Encoder
	if err := e.Init(makeFrequencyTable(map[Symbol]uint64{'a': 3, 'b': 1})); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	payload, numBits, err := e.Pack([]byte("aaab"))
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	if numBits != 4 {
		t.Errorf("expected 4 bits, got %d", numBits)
	}

	// "1" "1" "1" "0", then four bits of padding
	expect := []byte{0xe0}
	if !bytes.Equal(expect, payload) {
		t.Errorf("wrong payload:\n\texpect: %#v\n\tactual: %#v", expect, payload)
	}
}

func TestEncoder_PackSize(t *testing.T) {
	data := []byte("this is an example of a huffman tree")

	var ft FrequencyTable
	ft.countBytes(data)

	var e Encoder
	if err := e.Init(&ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	payload, numBits, err := e.Pack(data)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	if expect := e.TotalBits(&ft); numBits != expect {
		t.Errorf("expected %d bits, got %d", expect, numBits)
	}
	if expect := (numBits + 7) / 8; uint64(len(payload)) != expect {
		t.Errorf("expected %d payload bytes, got %d", expect, len(payload))
	}
}
