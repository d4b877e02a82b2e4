package huffman

import (
	"fmt"
	"iter"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// Epsilon is the relative tolerance within which two node weights are
// considered equal, deferring the ordering to the node labels.
const Epsilon = 1e-5

// Node is a node in a Huffman tree.  A leaf carries one Symbol; an internal
// node carries exactly two children.  Nodes are immutable once constructed.
type Node struct {
	label  string
	weight float64
	symbol Symbol
	left   *Node
	right  *Node
}

// NewLeaf constructs a leaf node for the given Symbol.
func NewLeaf(sym Symbol, weight float64) *Node {
	return &Node{
		label:  EscapeSymbol(sym),
		weight: weight,
		symbol: sym,
	}
}

// NewInternal constructs an internal node that takes ownership of left and
// right.  Its weight is the sum of theirs, and its label is the concatenation
// of their labels.
func NewInternal(left *Node, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node requires two children, got %v and %v", left, right)
	return &Node{
		label:  left.label + right.label,
		weight: left.weight + right.weight,
		symbol: InvalidSymbol,
		left:   left,
		right:  right,
	}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Label returns the diagnostic label of this node.
func (n *Node) Label() string {
	return n.label
}

// Weight returns the weight of this node.
func (n *Node) Weight() float64 {
	return n.weight
}

// Symbol returns the Symbol of a leaf node, or InvalidSymbol for an internal
// node.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Less reports whether n should be merged before other.  Lighter nodes come
// first.  Weights within Epsilon of each other (relative to the larger of the
// two) are treated as equal, and the node with the lexicographically lesser
// label comes first.
//
// Labels are compared as sequences of UTF-16 code units, not UTF-8 bytes.
// The two orders disagree when a symbol outside the Basic Multilingual Plane
// meets one in U+E000..U+FFFF, and streams written by other implementations
// of this format rely on the UTF-16 order.
//
func (n *Node) Less(other *Node) bool {
	a, b := n.weight, other.weight
	if math.Abs(a-b) < Epsilon*math.Max(math.Abs(a), math.Abs(b)) || a == b {
		return compareUTF16(n.label, other.label) < 0
	}
	return a < b
}

// compareUTF16 compares two strings by their UTF-16 encodings, returning -1,
// 0, or +1.
func compareUTF16(a string, b string) int {
	var bufA, bufB [2]uint16
	for a != "" && b != "" {
		ra, sizeA := utf8.DecodeRuneInString(a)
		rb, sizeB := utf8.DecodeRuneInString(b)
		a, b = a[sizeA:], b[sizeB:]
		if ra == rb {
			continue
		}
		ua := appendUTF16(bufA[:0], ra)
		ub := appendUTF16(bufB[:0], rb)
		for i := 0; i < len(ua) && i < len(ub); i++ {
			if ua[i] != ub[i] {
				if ua[i] < ub[i] {
					return -1
				}
				return 1
			}
		}
		// One rune's encoding is a proper prefix of the other's only if
		// the runes are equal, which was handled above.
		assert.Assertf(false, "distinct runes %U and %U share a UTF-16 encoding", ra, rb)
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

func appendUTF16(buf []uint16, r rune) []uint16 {
	if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
		return append(buf, uint16(r1), uint16(r2))
	}
	return append(buf, uint16(r))
}

// Walk yields every node of the subtree rooted at n in pre-order: the node
// itself, then its left subtree, then its right subtree.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{n}
		for len(stack) != 0 {
			last := len(stack) - 1
			node := stack[last]
			stack[last] = nil
			stack = stack[:last]

			if !yield(node) {
				return
			}
			if !node.IsLeaf() {
				stack = append(stack, node.right, node.left)
			}
		}
	}
}

// Leaves yields the leaf nodes of the subtree rooted at n, in the same order
// as Walk.
func (n *Node) Leaves() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for node := range n.Walk() {
			if node.IsLeaf() && !yield(node) {
				return
			}
		}
	}
}

// String returns a short programmer-readable description of this node.
func (n *Node) String() string {
	return fmt.Sprintf("%s - %g", n.label, n.weight)
}

var _ fmt.Stringer = (*Node)(nil)
