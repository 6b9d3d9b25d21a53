package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"github.com/nuclio/errors"
)

// NodeIndex identifies a node within a Tree.
type NodeIndex int32

// InvalidNode is returned by some functions to clearly indicate that no node
// is being returned.
const InvalidNode = NodeIndex(-1)

type treeNode struct {
	freq   uint64
	symbol Symbol
	left   NodeIndex
	right  NodeIndex
}

// Tree is a Huffman code tree.  Nodes live in a single arena and refer to
// their children by index; every internal node has exactly two children and
// no node is shared.
//
// The leaves occupy the first NumLeaves() slots of the arena, in ascending
// Symbol order.  Internal nodes follow in the order they were created.
//
type Tree struct {
	nodes     []treeNode
	numLeaves int
}

// BuildTree constructs a Huffman tree from a FrequencyTable.
//
// The two lowest-frequency nodes are repeatedly removed from a min-heap and
// joined under a new internal node, the first removed becoming the left child
// and the second the right child.  Ties are broken by arena index: leaves
// before internal nodes, leaves by Symbol, internal nodes by creation order.
// The resulting shape is therefore fully determined by the frequencies.
//
func BuildTree(freqs *FrequencyTable) (*Tree, error) {
	numLeaves := freqs.Distinct()
	if numLeaves == 0 {
		return nil, errors.Wrap(ErrInput, "No symbols to build a tree from")
	}

	t := &Tree{
		nodes:     make([]treeNode, 0, 2*numLeaves-1),
		numLeaves: numLeaves,
	}

	// Step 1: one leaf per symbol, in Symbol order.

	h := freqHeap{tree: t, list: make([]NodeIndex, 0, numLeaves)}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		freq := freqs.Count(Symbol(symbol))
		if freq == 0 {
			continue
		}
		index := NodeIndex(len(t.nodes))
		t.nodes = append(t.nodes, treeNode{freq: freq, symbol: Symbol(symbol), left: InvalidNode, right: InvalidNode})
		h.list = append(h.list, index)
	}
	h.Init()

	// Step 2: merge until a single root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeIndex)
		b := heap.Pop(&h).(NodeIndex)

		index := NodeIndex(len(t.nodes))
		t.nodes = append(t.nodes, treeNode{
			freq:  t.nodes[a].freq + t.nodes[b].freq,
			left:  a,
			right: b,
		})
		heap.Push(&h, index)
	}

	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "tree has %d nodes for %d leaves", len(t.nodes), numLeaves)
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() NodeIndex {
	return NodeIndex(len(t.nodes) - 1)
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaf nodes, i.e. the number of distinct
// symbols in the input.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// NumInternal returns the number of internal nodes.  This is always one less
// than NumLeaves.
func (t *Tree) NumInternal() int {
	return len(t.nodes) - t.numLeaves
}

// IsLeaf returns true iff n is a leaf node.
func (t *Tree) IsLeaf(n NodeIndex) bool {
	return t.nodes[n].left == InvalidNode
}

// Frequency returns the aggregate frequency of n.
func (t *Tree) Frequency(n NodeIndex) uint64 {
	return t.nodes[n].freq
}

// Symbol returns the symbol held by a leaf node.
func (t *Tree) Symbol(n NodeIndex) Symbol {
	assert.Assertf(t.IsLeaf(n), "node %d is not a leaf", n)
	return t.nodes[n].symbol
}

// Children returns the left and right children of n, or (InvalidNode,
// InvalidNode) if n is a leaf.
func (t *Tree) Children(n NodeIndex) (left NodeIndex, right NodeIndex) {
	node := t.nodes[n]
	return node.left, node.right
}

// Codes walks the tree and returns the Code for each Symbol, indexed by
// Symbol.  Symbols not present in the tree have a zero-sized Code.
//
// A tree with a single leaf has no edges to walk; that leaf is assigned the
// one-bit code "0" so that it still occupies a positive number of bits.
//
func (t *Tree) Codes() [NumSymbols]Code {
	var codes [NumSymbols]Code

	root := t.Root()
	if t.IsLeaf(root) {
		codes[t.nodes[root].symbol] = MakeCode(1, 0)
		return codes
	}

	// The walk uses an explicit stack.  The stack never holds more than
	// one pending sibling per level, so its depth is bounded by the
	// height of the tree.

	type stackItem struct {
		n  NodeIndex
		hc Code
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.numLeaves))+1)
	stack = append(stack, stackItem{n: root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.nodes[top.n]
		if node.left == InvalidNode {
			codes[node.symbol] = top.hc
			continue
		}

		assert.Assertf(top.hc.Size < MaxCodeSize, "tree height exceeds %d", MaxCodeSize)

		// Push right first so that the left subtree is visited first.
		stack = append(stack, stackItem{n: node.right, hc: top.hc.Append(1)})
		stack = append(stack, stackItem{n: node.left, hc: top.hc.Append(0)})
	}
	return codes
}

// type freqHeap {{{

type freqHeap struct {
	tree *Tree
	list []NodeIndex
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := h.tree.nodes[a].freq, h.tree.nodes[b].freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeIndex))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
