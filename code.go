package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits: the path from the root of a Huffman
// tree to one of its leaves.  false means "go left" and true means "go right".
type Code []bool

// MakeCode is a convenience function that constructs a Code from a string of
// '0' and '1' characters.  Any other character is treated as '1'.
func MakeCode(bits string) Code {
	hc := make(Code, len(bits))
	for i := 0; i < len(bits); i++ {
		hc[i] = bits[i] != '0'
	}
	return hc
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if len(prefix) > len(hc) {
		return false
	}
	for i, bit := range prefix {
		if hc[i] != bit {
			return false
		}
	}
	return true
}

// Equal returns true iff both Codes contain the same bits.
func (hc Code) Equal(other Code) bool {
	return len(hc) == len(other) && hc.HasPrefix(other)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	var buf strings.Builder
	buf.Grow(len(hc))
	for _, bit := range hc {
		if bit {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return strconv.Quote(buf.String())
}

// appendBit returns a new Code consisting of hc followed by bit.  The
// result never shares its backing array with hc.
func (hc Code) appendBit(bit bool) Code {
	out := make(Code, len(hc)+1)
	copy(out, hc)
	out[len(hc)] = bit
	return out
}

var _ fmt.Stringer = Code(nil)
