// Package alphabet provides validated, immutable transcoder alphabets.
package alphabet

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/errs"

	"github.com/calebcase/multibase/symbol"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("alphabet")

// MinSize is the smallest number of symbols an alphabet may contain.
const MinSize = 2

// DuplicateSymbolsError reports every position of an alphabet that holds a
// symbol occurring more than once.
type DuplicateSymbolsError struct {
	// Positions maps the index of each repeated occurrence (the first one
	// included) to the repeated symbol.
	Positions map[int]string
}

// Error implements error.
func (e *DuplicateSymbolsError) Error() string {
	return fmt.Sprintf("alphabet: duplicate symbols %s", formatPositions(e.Positions))
}

// Symbols returns the distinct duplicated symbols ordered by their first
// occurrence.
func (e *DuplicateSymbolsError) Symbols() []string {
	return distinct(e.Positions)
}

// InvalidSymbolError reports every position of a text that holds a symbol
// missing from the alphabet.
type InvalidSymbolError struct {
	Positions map[int]string
}

// Error implements error.
func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("alphabet: invalid symbols %s", formatPositions(e.Positions))
}

// Symbols returns the distinct invalid symbols ordered by their first
// occurrence.
func (e *InvalidSymbolError) Symbols() []string {
	return distinct(e.Positions)
}

// Alphabet is an ordered set of unique symbols. The symbol at index 0 is the
// zero symbol.
type Alphabet struct {
	symbols []string
	index   map[string]int
	mode    symbol.Mode
}

// New returns an alphabet made of the given symbols. Each symbol must be a
// single unit under mode. The whole alphabet is scanned before failing so
// that a *DuplicateSymbolsError lists every repeated symbol.
func New(symbols []string, mode symbol.Mode) (*Alphabet, error) {
	return build(symbols, mode)
}

// Parse splits s with the given mode and returns the resulting alphabet.
// Text decoded with this alphabet is split with the same mode.
func Parse(s string, mode symbol.Mode) (*Alphabet, error) {
	return build(symbol.Split(s, mode), mode)
}

// MustParse is like Parse but panics on error.
func MustParse(s string, mode symbol.Mode) *Alphabet {
	a, err := Parse(s, mode)
	if err != nil {
		panic(err)
	}

	return a
}

func build(symbols []string, mode symbol.Mode) (_ *Alphabet, err error) {
	if len(symbols) < MinSize {
		return nil, Error.New("at least %d symbols required: got %d", MinSize, len(symbols))
	}

	a := &Alphabet{
		symbols: make([]string, len(symbols)),
		index:   make(map[string]int, len(symbols)),
		mode:    mode,
	}
	copy(a.symbols, symbols)

	var positions map[int]string

	for i, s := range a.symbols {
		if s == "" {
			return nil, Error.New("empty symbol at position %d", i)
		}
		if symbol.Count(s, mode) != 1 {
			return nil, Error.New("symbol %q at position %d spans more than one unit in %s mode", s, i, mode)
		}
		if mode == symbol.Runes && !utf8.ValidString(s) {
			return nil, Error.New("symbol %q at position %d is not valid UTF-8", s, i)
		}

		j, seen := a.index[s]
		if !seen {
			a.index[s] = i

			continue
		}

		if positions == nil {
			positions = map[int]string{}
		}
		positions[j] = s
		positions[i] = s
	}

	if positions != nil {
		return nil, &DuplicateSymbolsError{
			Positions: positions,
		}
	}

	if mode == symbol.Graphemes {
		err = checkJoins(a.symbols)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

// checkJoins fails if any two symbols written next to each other would be
// read back as a single grapheme cluster (e.g. a combining mark after a
// letter, or two regional indicators).
func checkJoins(symbols []string) error {
	for i, l := range symbols {
		for j, r := range symbols {
			if symbol.Count(l+r, symbol.Graphemes) != 2 {
				return Error.New("symbols %q at position %d and %q at position %d join into one grapheme", l, i, r, j)
			}
		}
	}

	return nil
}

// Len returns the number of symbols (the base).
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the symbol for digit i.
func (a *Alphabet) Symbol(i int) string {
	return a.symbols[i]
}

// Zero returns the zero symbol.
func (a *Alphabet) Zero() string {
	return a.symbols[0]
}

// Index returns the digit value of sym.
func (a *Alphabet) Index(sym string) (i int, ok bool) {
	i, ok = a.index[sym]

	return i, ok
}

// Symbols returns a copy of the symbols in order.
func (a *Alphabet) Symbols() []string {
	symbols := make([]string, len(a.symbols))
	copy(symbols, a.symbols)

	return symbols
}

// Mode returns the split mode text is read with.
func (a *Alphabet) Mode() symbol.Mode {
	return a.mode
}

// Split returns the symbols of text as this alphabet reads them.
func (a *Alphabet) Split(text string) []string {
	return symbol.Split(text, a.mode)
}

// Digits splits text and returns the digit value of every symbol. All of
// text is scanned before failing so that an *InvalidSymbolError lists every
// offending symbol.
func (a *Alphabet) Digits(text string) (digits []int, err error) {
	symbols := a.Split(text)
	digits = make([]int, len(symbols))

	var positions map[int]string

	for i, s := range symbols {
		d, ok := a.index[s]
		if !ok {
			if positions == nil {
				positions = map[int]string{}
			}
			positions[i] = s

			continue
		}

		digits[i] = d
	}

	if positions != nil {
		return nil, &InvalidSymbolError{
			Positions: positions,
		}
	}

	return digits, nil
}

// String returns the symbols concatenated.
func (a *Alphabet) String() string {
	return strings.Join(a.symbols, "")
}

// formatPositions renders a position map in position order, e.g.
// [0:"a" 3:"a"].
func formatPositions(positions map[int]string) string {
	keys := make([]int, 0, len(positions))
	for k := range positions {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	sb := &strings.Builder{}
	sb.WriteString("[")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%d:%q", k, positions[k]))
	}
	sb.WriteString("]")

	return sb.String()
}

func distinct(positions map[int]string) []string {
	keys := make([]int, 0, len(positions))
	for k := range positions {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	seen := map[string]bool{}
	symbols := []string{}
	for _, k := range keys {
		s := positions[k]
		if seen[s] {
			continue
		}
		seen[s] = true
		symbols = append(symbols, s)
	}

	return symbols
}
