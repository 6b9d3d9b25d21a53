// Package huffman implements a byte-oriented Huffman codec with a
// self-describing container.  An input is scanned once to count byte
// frequencies, a prefix-code tree is built by repeatedly merging the two
// least frequent nodes, and the input is rewritten as a bit-packed stream of
// codes preceded by an array-shaped copy of the tree.
//
// The tree is stored as a binary heap array: the node in slot i has its left
// child in slot 2·i+1 and its right child in slot 2·i+2.  Decoding walks this
// array directly, one bit at a time, without rebuilding a pointer tree.
//
// Two container layouts are supported.  LayoutTagged marks leaf slots with an
// explicit presence bitset and can encode every byte value.  LayoutSentinel
// marks non-leaf slots with the byte '$' and is readable by older tools that
// use that convention, at the cost of being unable to encode '$' or '\\'.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Binary_heap#Heap_implementation>
//
package huffman
