package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Table maps each Symbol to its Code.
type Table map[Symbol]Code

// Encoder maps Symbols to Codes using a Huffman tree.
type Encoder struct {
	root    *Node
	table   Table
	minSize int
	maxSize int
}

// NewEncoder constructs an Encoder for the tree rooted at root.
func NewEncoder(root *Node) *Encoder {
	table, minSize, maxSize := buildTable(root)
	return &Encoder{
		root:    root,
		table:   table,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// BuildTable walks the tree rooted at root and returns the Code of every
// leaf.  A tree consisting of a single leaf assigns it the empty Code.
func BuildTable(root *Node) Table {
	table, _, _ := buildTable(root)
	return table
}

// Encode returns the Code for a Symbol.  The second return value is false if
// the Symbol is not in this Encoder's alphabet.
func (e *Encoder) Encode(sym Symbol) (Code, bool) {
	hc, found := e.table[sym]
	return hc, found
}

// Root returns the root of the Huffman tree.
func (e *Encoder) Root() *Node {
	return e.root
}

// MinSize is the bit length of the shortest Code.
func (e *Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest Code.
func (e *Encoder) MaxSize() int {
	return e.maxSize
}

// Symbols returns the alphabet of this Encoder in ascending order.
func (e *Encoder) Symbols() []Symbol {
	out := make([]Symbol, 0, len(e.table))
	for sym := range e.table {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, sym := range e.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", rune(sym), e.table[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// buildTable computes the Code of every leaf with a stack-based walk.  We
// also compute minSize and maxSize while we're here.
func buildTable(root *Node) (table Table, minSize int, maxSize int) {
	assert.Assertf(root != nil, "buildTable requires a root")

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes get pushed onto the stack, so the current stack
	// depth is the length of the Code of any leaf child of the top item.

	type stackItem struct {
		node *Node
		path Code
		x    byte
	}

	table = make(Table)
	var hasMinMax bool

	recordLeaf := func(leaf *Node, path Code) {
		_, dupe := table[leaf.symbol]
		assert.Assertf(!dupe, "Symbol %q appears in more than one leaf", rune(leaf.symbol))
		table[leaf.symbol] = path

		size := len(path)
		if !hasMinMax {
			hasMinMax = true
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	if root.IsLeaf() {
		recordLeaf(root, Code{})
		return
	}

	stack := make([]stackItem, 0, bitLength(len(root.label)))

	processChild := func(child *Node, path Code) {
		if child.IsLeaf() {
			recordLeaf(child, path)
			return
		}
		stack = append(stack, stackItem{node: child, path: path})
	}

	stack = append(stack, stackItem{node: root, path: Code{}})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, top.path.appendBit(false))
		case 1:
			processChild(top.node.right, top.path.appendBit(true))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
	return
}
