package transcoder

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/multibase/alphabet"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("transcoder")

// DuplicateSymbolsError is returned when constructing a transcoder from an
// alphabet that repeats symbols.
type DuplicateSymbolsError = alphabet.DuplicateSymbolsError

// InvalidSymbolError is returned when decoding text that contains symbols
// outside of the alphabet.
type InvalidSymbolError = alphabet.InvalidSymbolError

// Codec converts between bytes and text.
type Codec interface {
	// Encode returns the text for data. It never fails.
	Encode(data []byte) string

	// Decode returns the bytes for text. It fails with an
	// *InvalidSymbolError listing every symbol not in the alphabet.
	Decode(text string) (data []byte, err error)
}

// arithmetic changes the base of a magnitude.
type arithmetic interface {
	// toDigits returns the base digits of the big-endian magnitude in
	// data, most significant first. A zero magnitude has no digits.
	toDigits(data []byte, base int) []int

	// fromDigits returns the minimal big-endian bytes of the magnitude
	// with the given base digits, most significant first.
	fromDigits(digits []int, base int) []byte
}

// codec implements Codec on top of an arithmetic.
type codec struct {
	alphabet *alphabet.Alphabet
	math     arithmetic
}

func (c *codec) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	zeros := leadingZeroBytes(data)
	digits := c.math.toDigits(data[zeros:], c.alphabet.Len())

	sb := &strings.Builder{}
	sb.WriteString(strings.Repeat(c.alphabet.Zero(), zeros))
	for _, d := range digits {
		sb.WriteString(c.alphabet.Symbol(d))
	}

	return sb.String()
}

func (c *codec) Decode(text string) (data []byte, err error) {
	if text == "" {
		return []byte{}, nil
	}

	digits, err := c.alphabet.Digits(text)
	if err != nil {
		return nil, err
	}

	zeros := leadingZeroDigits(digits)
	magnitude := c.math.fromDigits(digits[zeros:], c.alphabet.Len())

	data = make([]byte, zeros+len(magnitude))
	copy(data[zeros:], magnitude)

	return data, nil
}

// Alphabet returns the alphabet of the codec.
func (c *codec) Alphabet() *alphabet.Alphabet {
	return c.alphabet
}

func leadingZeroBytes(data []byte) (n int) {
	for n < len(data) && data[n] == 0 {
		n++
	}

	return n
}

func leadingZeroDigits(digits []int) (n int) {
	for n < len(digits) && digits[n] == 0 {
		n++
	}

	return n
}

func reverse(digits []int) {
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
}
