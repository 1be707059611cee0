package transcoder

import (
	"github.com/calebcase/multibase/alphabet"
	"github.com/calebcase/multibase/integer"
)

// Manual is a Codec doing its arithmetic with integer.Magnitude, without
// math/big.
type Manual struct {
	codec
}

var _ Codec = (*Manual)(nil)

// NewManual returns a word array backed codec for a.
func NewManual(a *alphabet.Alphabet) *Manual {
	return &Manual{
		codec: codec{
			alphabet: a,
			math:     manual{},
		},
	}
}

type manual struct{}

func (manual) toDigits(data []byte, base int) []int {
	m := new(integer.Magnitude).SetBytes(data)

	// A 32 bit word holds at most 32 digits of any base >= 2.
	digits := make([]int, 0, m.Len()*32)
	for !m.IsZero() {
		digits = append(digits, int(m.DivMod(uint32(base))))
	}
	reverse(digits)

	return digits
}

func (manual) fromDigits(digits []int, base int) []byte {
	m := &integer.Magnitude{}
	for _, v := range digits {
		m.MulAdd(uint32(base), uint32(v))
	}

	return m.Bytes()
}
