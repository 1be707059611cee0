package transcoder

import (
	"math/big"

	"github.com/calebcase/multibase/alphabet"
)

// Precision is a Codec doing its arithmetic with math/big.
type Precision struct {
	codec
}

var _ Codec = (*Precision)(nil)

// NewPrecision returns a math/big backed codec for a.
func NewPrecision(a *alphabet.Alphabet) *Precision {
	return &Precision{
		codec: codec{
			alphabet: a,
			math:     precision{},
		},
	}
}

type precision struct{}

func (precision) toDigits(data []byte, base int) []int {
	x := new(big.Int).SetBytes(data)
	b := big.NewInt(int64(base))
	mod := new(big.Int)

	digits := []int{}
	for x.Sign() > 0 {
		x.DivMod(x, b, mod)
		digits = append(digits, int(mod.Int64()))
	}
	reverse(digits)

	return digits
}

func (precision) fromDigits(digits []int, base int) []byte {
	x := new(big.Int)
	b := big.NewInt(int64(base))
	d := new(big.Int)

	for _, v := range digits {
		x.Mul(x, b)
		x.Add(x, d.SetInt64(int64(v)))
	}

	return x.Bytes()
}
