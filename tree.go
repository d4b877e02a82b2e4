package huffman

import (
	"container/heap"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// BuildTree merges the given leaves into a Huffman tree and returns its root.
//
// The two least nodes (per Node.Less) are repeatedly popped from a minheap and
// replaced by their combination, the first-popped node becoming the left
// child, until a single node remains.  A single leaf is returned as-is.
//
// The result depends only on the set of leaves, not on their order: the leaves
// are sorted by Symbol before the minheap is built.  This is what allows a tree
// to be rebuilt exactly from its signature.
//
func BuildTree(leaves []*Node) *Node {
	assert.Assertf(len(leaves) != 0, "BuildTree requires at least one leaf")

	sorted := make(bySymbol, len(leaves))
	copy(sorted, leaves)
	sorted.Sort()

	h := nodeHeap{list: make([]heapItem, 0, len(sorted))}
	for _, leaf := range sorted {
		assert.Assertf(leaf.IsLeaf(), "BuildTree given internal node %v", leaf)
		h.list = append(h.list, heapItem{node: leaf, seq: h.nextSeq})
		h.nextSeq++
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		heap.Push(&h, heapItem{node: NewInternal(a.node, b.node), seq: h.nextSeq})
		h.nextSeq++
	}

	return heap.Pop(&h).(heapItem).node
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list    []heapItem
	nextSeq uint64
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Less(b.node) {
		return true
	}
	if b.node.Less(a.node) {
		return false
	}
	// Equal weights and equal labels, e.g. leaf `\n` versus the merge of
	// leaves `\` and `n`.
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

// type bySymbol {{{

type bySymbol []*Node

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i].symbol < list[j].symbol
}

var _ sort.Interface = bySymbol(nil)

// }}}
