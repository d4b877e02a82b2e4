package huffman

import (
	mathbits "math/bits"
)

// bitLength returns the number of bits needed to represent x, or 1 for x <= 0.
// It serves as a guess for the depth of a tree with x leaves.
func bitLength(x int) int {
	if x <= 0 {
		x = 1
	}
	return mathbits.Len(uint(x))
}

// truncate renders a prefix of data for use in error messages.
func truncate(data []byte) string {
	const limit = 64
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}
