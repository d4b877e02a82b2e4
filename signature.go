package huffman

import (
	"math"
	"strconv"
	"strings"
)

const (
	// RecordSeparator separates the leaf records of a signature.
	RecordSeparator = "|^"

	// FieldSeparator separates the symbol of a leaf record from its weight.
	FieldSeparator = ",^"
)

// FormatSignature renders the leaves of the tree rooted at root, in pre-order,
// as a single line of text from which ParseSignature can rebuild the tree.
//
// Weights are written in the shortest form that parses back to the identical
// float64, so the rebuilt tree makes exactly the same merge decisions.
//
func FormatSignature(root *Node) string {
	var buf strings.Builder
	first := true
	for leaf := range root.Leaves() {
		if !first {
			buf.WriteString(RecordSeparator)
		}
		first = false
		buf.WriteString(leaf.label)
		buf.WriteString(FieldSeparator)
		buf.WriteString(strconv.FormatFloat(leaf.weight, 'g', -1, 64))
	}
	return buf.String()
}

// ParseSignature parses the output of FormatSignature and rebuilds the tree.
func ParseSignature(signature string) (*Node, error) {
	leaves, err := ParseLeaves(signature)
	if err != nil {
		return nil, err
	}
	return BuildTree(leaves), nil
}

// ParseLeaves parses the output of FormatSignature into leaf nodes, in the
// order in which they appear.
func ParseLeaves(signature string) ([]*Node, error) {
	if signature == "" {
		return nil, &FormatError{What: "signature", Text: signature}
	}

	records := strings.Split(signature, RecordSeparator)
	leaves := make([]*Node, 0, len(records))
	seen := make(map[Symbol]struct{}, len(records))
	for _, record := range records {
		fields := strings.Split(record, FieldSeparator)
		if len(fields) != 2 {
			return nil, &FormatError{What: "record", Text: record}
		}

		sym, err := UnescapeSymbol(fields[0])
		if err != nil {
			return nil, err
		}
		if _, dupe := seen[sym]; dupe {
			return nil, &FormatError{What: "record (duplicate symbol)", Text: record}
		}
		seen[sym] = struct{}{}

		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &FormatError{What: "weight", Text: fields[1], Err: err}
		}
		if weight < 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
			return nil, &FormatError{What: "weight", Text: fields[1]}
		}

		leaves = append(leaves, NewLeaf(sym, weight))
	}
	return leaves, nil
}
