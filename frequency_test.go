package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	counts, total := Counts("abracadabra")
	require.Equal(t, uint64(11), total)
	require.Equal(t, map[Symbol]uint64{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}, counts)

	counts, total = Counts("héé")
	require.Equal(t, uint64(3), total)
	require.Equal(t, map[Symbol]uint64{'h': 1, 'é': 2}, counts)
}

func TestFrequencies(t *testing.T) {
	freqs := Frequencies("abracadabra")
	require.Len(t, freqs, 5)
	require.Equal(t, 5.0/11.0, freqs['a'])
	require.Equal(t, 2.0/11.0, freqs['b'])
	require.Equal(t, 2.0/11.0, freqs['r'])
	require.Equal(t, 1.0/11.0, freqs['c'])
	require.Equal(t, 1.0/11.0, freqs['d'])

	var sum float64
	for _, f := range freqs {
		sum += f
	}
	require.InDelta(t, 1.0, sum, Epsilon)
}

func TestFrequencies_Empty(t *testing.T) {
	require.Empty(t, Frequencies(""))
}
