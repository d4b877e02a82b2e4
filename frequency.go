package huffman

// Counts returns the number of occurrences of each distinct Symbol in text,
// along with the total number of Symbols.
func Counts(text string) (counts map[Symbol]uint64, total uint64) {
	counts = make(map[Symbol]uint64)
	for _, r := range text {
		counts[Symbol(r)]++
		total++
	}
	return counts, total
}

// Frequencies returns the relative frequency of each distinct Symbol in text,
// i.e. its count divided by the total number of Symbols.  The result is empty
// for empty text.
func Frequencies(text string) map[Symbol]float64 {
	counts, total := Counts(text)
	out := make(map[Symbol]float64, len(counts))
	for sym, count := range counts {
		out[sym] = float64(count) / float64(total)
	}
	return out
}
