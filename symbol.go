package huffman

import (
	"unicode/utf8"
)

// Symbol represents a symbol in the text alphabet: one rune, exactly as
// produced by ranging over a Go string.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// escapes lists the symbols that would break a newline-delimited header if
// written raw, along with their textual stand-ins.
var escapes = map[Symbol]string{
	'\n': `\n`,
	'\r': `\r`,
}

var unescapes = func() map[string]Symbol {
	m := make(map[string]Symbol, len(escapes))
	for sym, text := range escapes {
		m[text] = sym
	}
	return m
}()

// EscapeSymbol returns the header-safe text form of a Symbol.
func EscapeSymbol(sym Symbol) string {
	if text, found := escapes[sym]; found {
		return text
	}
	return string(rune(sym))
}

// UnescapeSymbol is the inverse of EscapeSymbol.  The text must be either an
// escape sequence or exactly one UTF-8 encoded rune.
func UnescapeSymbol(text string) (Symbol, error) {
	if sym, found := unescapes[text]; found {
		return sym, nil
	}
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || (r == utf8.RuneError && size == 1) {
		return InvalidSymbol, &FormatError{What: "symbol", Text: text}
	}
	return Symbol(r), nil
}
