package huffman

import (
	"testing"
)

func TestNode_Less(t *testing.T) {
	type testRow struct {
		name   string
		a, b   *Node
		expect bool
	}

	testData := [...]testRow{
		{name: "lighter-first", a: NewLeaf('z', 0.1), b: NewLeaf('a', 0.2), expect: true},
		{name: "heavier-second", a: NewLeaf('a', 0.2), b: NewLeaf('z', 0.1), expect: false},
		{name: "tie-lesser-label-first", a: NewLeaf('a', 0.5), b: NewLeaf('z', 0.5), expect: true},
		{name: "tie-greater-label-second", a: NewLeaf('z', 0.5), b: NewLeaf('a', 0.5), expect: false},
		{name: "near-tie", a: NewLeaf('a', 0.5000001), b: NewLeaf('b', 0.5), expect: true},
		{name: "near-tie-reversed", a: NewLeaf('b', 0.5), b: NewLeaf('a', 0.5000001), expect: false},
		{name: "outside-epsilon", a: NewLeaf('b', 0.5), b: NewLeaf('a', 0.5001), expect: true},
		{name: "zero-weights", a: NewLeaf('a', 0), b: NewLeaf('b', 0), expect: true},
		{name: "utf16-astral-before-specials", a: NewLeaf('🎉', 0.5), b: NewLeaf('\uFFFD', 0.5), expect: true},
		{name: "utf16-private-use-after-astral", a: NewLeaf('\uE000', 0.5), b: NewLeaf('🎉', 0.5), expect: false},
		{name: "utf16-agrees-with-utf8-in-bmp", a: NewLeaf('é', 0.5), b: NewLeaf('世', 0.5), expect: true},
		{name: "same-node", a: NewLeaf('a', 0.5), b: NewLeaf('a', 0.5), expect: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := row.a.Less(row.b)
			if row.expect != actual {
				t.Errorf("%v < %v: expected %v, got %v", row.a, row.b, row.expect, actual)
			}
		})
	}
}

func TestNewInternal(t *testing.T) {
	left := NewLeaf('\n', 0.25)
	right := NewLeaf('x', 0.5)
	n := NewInternal(left, right)

	if n.IsLeaf() {
		t.Errorf("internal node reports IsLeaf")
	}
	if expect := `\nx`; n.Label() != expect {
		t.Errorf("wrong label: expected %q, got %q", expect, n.Label())
	}
	if expect := 0.75; n.Weight() != expect {
		t.Errorf("wrong weight: expected %g, got %g", expect, n.Weight())
	}
	if n.Symbol() != InvalidSymbol {
		t.Errorf("internal node has symbol %q", rune(n.Symbol()))
	}
	if n.Left() != left || n.Right() != right {
		t.Errorf("children not retained")
	}
	if expect := `\nx - 0.75`; n.String() != expect {
		t.Errorf("wrong string: expected %q, got %q", expect, n.String())
	}
}

func TestNode_Walk(t *testing.T) {
	// ((a b) c)
	root := NewInternal(NewInternal(NewLeaf('a', 1), NewLeaf('b', 1)), NewLeaf('c', 1))

	var labels []string
	for n := range root.Walk() {
		labels = append(labels, n.Label())
	}
	expect := []string{"abc", "ab", "a", "b", "c"}
	if len(labels) != len(expect) {
		t.Fatalf("wrong walk:\n\texpect: %q\n\tactual: %q", expect, labels)
	}
	for i := range expect {
		if labels[i] != expect[i] {
			t.Errorf("wrong walk:\n\texpect: %q\n\tactual: %q", expect, labels)
			break
		}
	}

	var leaves []Symbol
	for n := range root.Leaves() {
		leaves = append(leaves, n.Symbol())
		if len(leaves) == 2 {
			break
		}
	}
	if len(leaves) != 2 || leaves[0] != 'a' || leaves[1] != 'b' {
		t.Errorf("wrong leaves: %q", leaves)
	}
}

func TestCompareUTF16(t *testing.T) {
	type testRow struct {
		a, b   string
		expect int
	}

	testData := [...]testRow{
		{a: "", b: "", expect: 0},
		{a: "", b: "a", expect: -1},
		{a: "a", b: "", expect: 1},
		{a: "ab", b: "ab", expect: 0},
		{a: "ab", b: "abc", expect: -1},
		{a: "b", b: "ab", expect: 1},
		{a: `\n`, b: `\r`, expect: -1},
		{a: "\uFFFD", b: "🎉", expect: 1},
		{a: "🎉x", b: "🎉y", expect: -1},
		{a: "𝄞", b: "🎉", expect: -1},
	}
	for _, row := range testData {
		t.Run(row.a+"/"+row.b, func(t *testing.T) {
			actual := compareUTF16(row.a, row.b)
			if row.expect != actual {
				t.Errorf("compareUTF16(%q, %q): expected %d, got %d", row.a, row.b, row.expect, actual)
			}
		})
	}
}
