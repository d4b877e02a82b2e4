// Package huffman implements a Huffman coder for text with a self-describing
// textual header.
//
// An encoded buffer consists of a signature line listing every leaf of the
// Huffman tree with its weight, a line holding the number of symbols in the
// original text, and the MSB-first bit-packed codes of those symbols:
//
//     a,^0.4545454545454545|^r,^0.18181818181818182|^...
//     11
//     <payload>
//
// The tree is rebuilt from the signature alone.  This works because tree
// construction is deterministic: ties between node weights are broken by
// comparing node labels, and weights are written without loss of precision.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
