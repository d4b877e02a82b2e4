package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Header is the textual prefix of an encoded buffer.
type Header struct {
	// Signature describes the Huffman tree; see FormatSignature.
	Signature string

	// Length is the number of Symbols in the original text.
	Length uint64
}

// String returns the header exactly as it is written to the wire.
func (h Header) String() string {
	return h.Signature + "\n" + strconv.FormatUint(h.Length, 10) + "\n"
}

// Size returns the number of bytes the header occupies on the wire.
func (h Header) Size() int {
	return len(h.Signature) + 1 + len(strconv.FormatUint(h.Length, 10)) + 1
}

// ParseHeader splits an encoded buffer into its Header and payload.
func ParseHeader(data []byte) (Header, []byte, error) {
	sigEnd := bytes.IndexByte(data, '\n')
	if sigEnd < 0 {
		return Header{}, nil, &FormatError{What: "header", Text: truncate(data)}
	}
	signature := data[:sigEnd]
	if !utf8.Valid(signature) {
		return Header{}, nil, &FormatError{What: "signature (invalid UTF-8)", Text: truncate(signature)}
	}

	rest := data[sigEnd+1:]
	lenEnd := bytes.IndexByte(rest, '\n')
	if lenEnd < 0 {
		return Header{}, nil, &FormatError{What: "header", Text: truncate(data)}
	}
	lengthText := string(rest[:lenEnd])
	length, err := strconv.ParseUint(lengthText, 10, 64)
	if err != nil {
		return Header{}, nil, &FormatError{What: "content length", Text: lengthText, Err: err}
	}

	// The payload begins right after the second terminator, i.e. at
	// len(signature) + 1 + len(lengthText) + 1.
	return Header{Signature: string(signature), Length: length}, rest[lenEnd+1:], nil
}

// Coder pairs an Encoder and a Decoder built over the same Huffman tree.  It
// is immutable and safe for concurrent use.
type Coder struct {
	enc       *Encoder
	dec       *Decoder
	signature string
}

// NewCoder builds a Huffman tree over the given Symbol weights.
func NewCoder(weights map[Symbol]float64) (*Coder, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyInput
	}
	leaves := make([]*Node, 0, len(weights))
	for sym, weight := range weights {
		leaves = append(leaves, NewLeaf(sym, weight))
	}
	return newCoder(BuildTree(leaves)), nil
}

// NewCoderFromSignature rebuilds the Huffman tree described by signature.
func NewCoderFromSignature(signature string) (*Coder, error) {
	root, err := ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	return newCoder(root), nil
}

func newCoder(root *Node) *Coder {
	return &Coder{
		enc:       NewEncoder(root),
		dec:       NewDecoder(root),
		signature: FormatSignature(root),
	}
}

// Root returns the root of the Huffman tree.
func (c *Coder) Root() *Node {
	return c.enc.Root()
}

// Encoder returns the Encoder half of this Coder.
func (c *Coder) Encoder() *Encoder {
	return c.enc
}

// Decoder returns the Decoder half of this Coder.
func (c *Coder) Decoder() *Decoder {
	return c.dec
}

// Signature returns the signature of the Huffman tree.
func (c *Coder) Signature() string {
	return c.signature
}

// Table returns a copy of the encoding table.
func (c *Coder) Table() Table {
	out := make(Table, len(c.enc.table))
	for sym, hc := range c.enc.table {
		out[sym] = hc
	}
	return out
}

// EncodePayload returns the packed Codes of every Symbol of text, in order,
// along with the number of Symbols.
func (c *Coder) EncodePayload(text string) ([]byte, uint64, error) {
	var length uint64
	missing := InvalidSymbol
	payload, err := PackCodes(func(yield func(Code) bool) {
		for _, r := range text {
			hc, found := c.enc.Encode(Symbol(r))
			if !found {
				missing = Symbol(r)
				return
			}
			length++
			if !yield(hc) {
				return
			}
		}
	})
	if err != nil {
		return nil, 0, err
	}
	if missing != InvalidSymbol {
		return nil, 0, &FormatError{What: "text (symbol not in alphabet)", Text: EscapeSymbol(missing)}
	}
	return payload, length, nil
}

// DecodePayload decodes exactly n Symbols from payload.
func (c *Coder) DecodePayload(payload []byte, n uint64) (string, error) {
	return c.dec.Decode(Unpack(payload), n)
}

// Dump writes a programmer-readable debugging dump of the Coder's current
// state to the given writer.
func (c *Coder) Dump(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "Signature() = "+strconv.Quote(c.signature)+"\n")
	total := int64(n)
	if err != nil {
		return total, err
	}
	n64, err := c.enc.Dump(w)
	total += n64
	return total, err
}

// Codec encodes text to, and decodes text from, the wire format:
//
//     <signature> "\n" <content-length> "\n" <payload>
//
// The zero value is ready to use and logs nothing.
//
type Codec struct {
	// Logger receives debug-level statistics about each call.
	Logger logrus.FieldLogger

	// MaxLength is the largest content length Decode will accept.  If 0,
	// DefaultMaxLength is used.
	MaxLength uint64
}

// DefaultMaxLength bounds the content length accepted by a Codec whose
// MaxLength is 0.  A single-symbol tree decodes any length from an empty
// payload, so without a bound a header of a few bytes can demand an
// arbitrarily large output.
const DefaultMaxLength = 1 << 30

func (codec Codec) maxLength() uint64 {
	if codec.MaxLength == 0 {
		return DefaultMaxLength
	}
	return codec.MaxLength
}

var discardLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

func (codec Codec) log() logrus.FieldLogger {
	if codec.Logger == nil {
		return discardLogger
	}
	return codec.Logger
}

// Encode compresses text.  It returns ErrEmptyInput for empty text, and a
// *FormatError if text is not valid UTF-8.
func (codec Codec) Encode(text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, &FormatError{What: "text (invalid UTF-8)", Text: truncate([]byte(text))}
	}

	c, err := NewCoder(Frequencies(text))
	if err != nil {
		return nil, err
	}

	payload, length, err := c.EncodePayload(text)
	if err != nil {
		return nil, err
	}

	header := Header{Signature: c.signature, Length: length}
	out := make([]byte, 0, header.Size()+len(payload))
	out = append(out, header.String()...)
	out = append(out, payload...)

	codec.log().WithFields(logrus.Fields{
		"symbols":      length,
		"alphabet":     len(c.enc.table),
		"headerBytes":  header.Size(),
		"payloadBytes": len(payload),
	}).Debug("encoded text")
	return out, nil
}

// Decode reverses Encode.  It returns a *FormatError if the header cannot be
// parsed or its content length exceeds the Codec's MaxLength, and a
// *CorruptStreamError if the payload is too short or malformed.
func (codec Codec) Decode(data []byte) (string, error) {
	header, payload, err := ParseHeader(data)
	if err != nil {
		return "", err
	}
	if limit := codec.maxLength(); header.Length > limit {
		return "", &FormatError{
			What: "content length",
			Text: strconv.FormatUint(header.Length, 10),
			Err:  fmt.Errorf("exceeds limit of %d symbols", limit),
		}
	}

	c, err := NewCoderFromSignature(header.Signature)
	if err != nil {
		return "", err
	}

	text, err := c.DecodePayload(payload, header.Length)
	if err != nil {
		return "", err
	}

	codec.log().WithFields(logrus.Fields{
		"symbols":      header.Length,
		"alphabet":     len(c.enc.table),
		"headerBytes":  header.Size(),
		"payloadBytes": len(payload),
	}).Debug("decoded text")
	return text, nil
}

// Inspect parses the header of an encoded buffer and rebuilds its Coder
// without decoding the payload.
func (codec Codec) Inspect(data []byte) (Header, *Coder, error) {
	header, _, err := ParseHeader(data)
	if err != nil {
		return Header{}, nil, err
	}
	c, err := NewCoderFromSignature(header.Signature)
	if err != nil {
		return Header{}, nil, err
	}
	return header, c, nil
}

// Encode compresses text using the zero Codec.
func Encode(text string) ([]byte, error) {
	return Codec{}.Encode(text)
}

// Decode decompresses data using the zero Codec.
func Decode(data []byte) (string, error) {
	return Codec{}.Decode(data)
}
