package huffman

import (
	"bytes"
	"io"
	"iter"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Pack packs a finite sequence of bits into bytes, most significant bit
// first.  A final partial byte is padded with zero bits on the low end, so
// n bits always produce ceil(n/8) bytes.
func Pack(bits iter.Seq[bool]) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for bit := range bits {
		w.TryWriteBool(bit)
	}
	w.TryAlign()
	if w.TryError != nil {
		return nil, w.TryError
	}
	return buf.Bytes(), nil
}

// PackCodes packs the concatenation of the given Codes.
func PackCodes(codes iter.Seq[Code]) ([]byte, error) {
	return Pack(func(yield func(bool) bool) {
		for hc := range codes {
			for _, bit := range hc {
				if !yield(bit) {
					return
				}
			}
		}
	})
}

// Unpack returns the bits of data, eight per byte, most significant bit first.
//
// The sequence is lazy and may be iterated any number of times.  Padding bits
// are not self-describing: the caller must know how many of the trailing bits
// are meaningful.
//
func Unpack(data []byte) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		r := bitio.NewReader(bytes.NewReader(data))
		for {
			bit, err := r.ReadBool()
			if err == io.EOF {
				return
			}
			assert.Assertf(err == nil, "bytes.Reader failed: %v", err)
			if !yield(bit) {
				return
			}
		}
	}
}
