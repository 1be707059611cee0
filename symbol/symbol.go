package symbol

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("symbol")

// Mode selects how text is split into symbols.
type Mode int

// Split modes.
const (
	Runes Mode = iota
	Graphemes
	Bytes
)

var modeNames = map[Mode]string{
	Runes:     "runes",
	Graphemes: "graphemes",
	Bytes:     "bytes",
}

// String returns the name of the mode.
func (m Mode) String() string {
	name, ok := modeNames[m]
	if !ok {
		return "unknown"
	}

	return name
}

// ParseMode returns the mode with the given name. The empty name selects
// Runes.
func ParseMode(name string) (m Mode, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Runes, nil
	}

	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}

	return Runes, Error.New("unknown split mode: %q", name)
}

// Split returns the symbols of s in order. The symbol at index i of the
// result is the symbol at position i of s.
func Split(s string, mode Mode) (symbols []string) {
	if s == "" {
		return []string{}
	}

	switch mode {
	case Bytes:
		symbols = make([]string, 0, len(s))
		for i := 0; i < len(s); i++ {
			symbols = append(symbols, s[i:i+1])
		}
	case Graphemes:
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			symbols = append(symbols, g.Str())
		}
	default:
		symbols = make([]string, 0, utf8.RuneCountInString(s))
		for i := 0; i < len(s); {
			// Invalid encodings report a width of 1 so the raw byte is
			// kept as its own symbol.
			_, width := utf8.DecodeRuneInString(s[i:])
			symbols = append(symbols, s[i:i+width])
			i += width
		}
	}

	return symbols
}

// Count returns the number of symbols in s.
func Count(s string, mode Mode) int {
	switch mode {
	case Bytes:
		return len(s)
	case Graphemes:
		return len(Split(s, Graphemes))
	default:
		return utf8.RuneCountInString(s)
	}
}
