package huffman

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func bits(s string) []bool {
	return []bool(MakeCode(s))
}

func TestPack(t *testing.T) {
	type testRow struct {
		name   string
		bits   string
		expect []byte
	}

	testData := [...]testRow{
		{name: "empty", bits: "", expect: []byte{}},
		{name: "one-set-bit", bits: "1", expect: []byte{0x80}},
		{name: "one-clear-bit", bits: "0", expect: []byte{0x00}},
		{name: "full-byte", bits: "10100101", expect: []byte{0xa5}},
		{name: "nine-bits", bits: "111111111", expect: []byte{0xff, 0x80}},
		{name: "abracadabra", bits: "01101001110011110110100", expect: []byte{0x69, 0xcf, 0x68}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := Pack(slices.Values(bits(row.bits)))
			require.NoError(t, err)
			require.Equal(t, row.expect, append([]byte{}, actual...))
			require.Len(t, actual, (len(row.bits)+7)/8)
		})
	}
}

func TestPackCodes(t *testing.T) {
	codes := []Code{MakeCode("0"), MakeCode("10"), MakeCode(""), MakeCode("110"), MakeCode("0")}
	actual, err := PackCodes(slices.Values(codes))
	require.NoError(t, err)
	require.Equal(t, []byte{0x58}, actual)
}

func TestUnpack(t *testing.T) {
	seq := Unpack([]byte{0xa5, 0x80})
	expect := bits("1010010110000000")
	require.Equal(t, expect, slices.Collect(seq))

	// The sequence is restartable.
	require.Equal(t, expect, slices.Collect(seq))

	// Stopping early is permitted.
	var got []bool
	for bit := range seq {
		got = append(got, bit)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, bits("101"), got)

	require.Empty(t, slices.Collect(Unpack(nil)))
}

func TestPackUnpack(t *testing.T) {
	for n := 0; n <= 24; n++ {
		in := make([]bool, n)
		for i := range in {
			in[i] = (i*7+n)%3 == 0
		}
		packed, err := Pack(slices.Values(in))
		require.NoError(t, err)

		out := slices.Collect(Unpack(packed))
		require.Len(t, out, 8*len(packed))
		require.True(t, slices.Equal(in, out[:n]), "bits %v came back as %v", in, out[:n])
		for _, pad := range out[n:] {
			require.False(t, pad, "padding bits must be zero")
		}
	}
}
