package huffman

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrEmptyInput is returned by Encode when the text contains no symbols, since
// no Huffman tree can be built over an empty alphabet.
var ErrEmptyInput = errors.New("huffman: cannot encode empty text")

// FormatError reports a header or signature that could not be parsed.
type FormatError struct {
	// What names the malformed element, e.g. "record" or "weight".
	What string

	// Text holds the offending input.
	Text string

	// Err holds the underlying parse error, if any.
	Err error
}

func (err *FormatError) Error() string {
	s := "huffman: malformed " + err.What + " " + strconv.Quote(err.Text)
	if err.Err != nil {
		s += ": " + err.Err.Error()
	}
	return s
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

// CorruptStreamError reports a payload that ran out of bits, or walked off
// the tree, before the promised number of symbols had been decoded.
type CorruptStreamError struct {
	Want uint64
	Got  uint64
}

func (err *CorruptStreamError) Error() string {
	return fmt.Sprintf("huffman: corrupt payload: decoded %d of %d symbols", err.Got, err.Want)
}

var (
	_ error = (*FormatError)(nil)
	_ error = (*CorruptStreamError)(nil)
)
