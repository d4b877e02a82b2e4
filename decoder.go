package huffman

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// Decoder maps sequences of bits back to Symbols by walking a Huffman tree.
type Decoder struct {
	root *Node
}

// NewDecoder constructs a Decoder for the tree rooted at root.
func NewDecoder(root *Node) *Decoder {
	assert.Assertf(root != nil, "NewDecoder requires a root")
	return &Decoder{root: root}
}

// Root returns the root of the Huffman tree.
func (d *Decoder) Root() *Node {
	return d.root
}

// Decode consumes bits until exactly n Symbols have been decoded, and returns
// them as text.  Any bits left over are ignored.
//
// If the bits run out first, or the walk reaches a node without the required
// child, Decode returns a *CorruptStreamError.
//
// A tree consisting of a single leaf has no edges to walk; in that case the
// leaf's Symbol is repeated n times and bits is never consulted.
//
func (d *Decoder) Decode(bits iter.Seq[bool], n uint64) (string, error) {
	if n == 0 {
		return "", nil
	}

	if d.root.IsLeaf() {
		return d.repeat(n)
	}

	var buf strings.Builder
	var got uint64
	node := d.root
	for bit := range bits {
		next := node.left
		if bit {
			next = node.right
		}
		if next == nil {
			return "", &CorruptStreamError{Want: n, Got: got}
		}

		node = next
		if !node.IsLeaf() {
			continue
		}

		buf.WriteRune(rune(node.symbol))
		got++
		node = d.root
		if got == n {
			return buf.String(), nil
		}
	}
	return "", &CorruptStreamError{Want: n, Got: got}
}

func (d *Decoder) repeat(n uint64) (string, error) {
	sym := string(rune(d.root.symbol))
	if n > uint64(math.MaxInt/utf8.UTFMax) {
		return "", &FormatError{What: "content length", Text: fmt.Sprint(n)}
	}
	return strings.Repeat(sym, int(n)), nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	table := BuildTable(d.root)
	keys := make(byCode, 0, len(table))
	symbols := make(map[string]Symbol, len(table))
	for sym, hc := range table {
		keys = append(keys, hc)
		symbols[hc.String()] = sym
	}
	keys.Sort()

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tRoot() = %v\n", d.root)
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %q\n", hc, rune(symbols[hc.String()]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for k := range a {
		if a[k] != b[k] {
			return b[k]
		}
	}
	return false
}

var _ sort.Interface = byCode(nil)

// }}}
