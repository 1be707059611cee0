// Package integer provides an unsigned arbitrary precision integer built on
// plain machine words.
//
// Magnitude only supports the operations needed to change the base of a
// number one small digit at a time: multiply by a scalar and add a scalar,
// and divide by a scalar keeping the remainder. It exists so that base
// conversion does not depend on math/big, and its results are checked
// against math/big in the tests.
//
// Words are stored least significant first in base 2^32. The most
// significant word is never zero, so zero is the empty word slice.
package integer

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

const (
	wordBits  = 32
	wordBytes = wordBits / 8
)

// Magnitude is an unsigned integer of any size. The zero value is 0.
type Magnitude struct {
	words []uint32
}

// SetBytes sets m to the big-endian unsigned value in data and returns m.
func (m *Magnitude) SetBytes(data []byte) *Magnitude {
	m.words = m.words[:0]

	for end := len(data); end > 0; end -= wordBytes {
		start := end - wordBytes
		if start < 0 {
			start = 0
		}

		var w uint32
		for _, b := range data[start:end] {
			w = w<<8 | uint32(b)
		}

		m.words = append(m.words, w)
	}

	m.trim()

	return m
}

// Bytes returns the minimal big-endian representation of m. Zero is
// represented by an empty slice.
func (m *Magnitude) Bytes() []byte {
	if m.IsZero() {
		return []byte{}
	}

	data := make([]byte, len(m.words)*wordBytes)
	for i, w := range m.words {
		at := len(data) - (i+1)*wordBytes
		data[at] = byte(w >> 24)
		data[at+1] = byte(w >> 16)
		data[at+2] = byte(w >> 8)
		data[at+3] = byte(w)
	}

	// Only the most significant word may carry leading zero bytes.
	skip := 0
	for skip < len(data) && data[skip] == 0 {
		skip++
	}

	return data[skip:]
}

// IsZero reports whether m is 0.
func (m *Magnitude) IsZero() bool {
	return len(m.words) == 0
}

// Len returns the number of words in m.
func (m *Magnitude) Len() int {
	return len(m.words)
}

// MulAdd sets m to m*mul + add.
func (m *Magnitude) MulAdd(mul, add uint32) {
	carry := uint64(add)

	for i, w := range m.words {
		v := uint64(w)*uint64(mul) + carry
		m.words[i] = uint32(v)
		carry = v >> wordBits
	}

	// v <= (2^32-1)*(2^32-1) + 2^32-1 < 2^64, so carry always fits in a
	// single new word.
	if carry != 0 {
		m.words = append(m.words, uint32(carry))
	}

	m.trim()
}

// DivMod sets m to m/d and returns m%d. It panics if d is 0.
func (m *Magnitude) DivMod(d uint32) (rem uint32) {
	if d == 0 {
		panic(Error.New("division by zero"))
	}

	var r uint64
	for i := len(m.words) - 1; i >= 0; i-- {
		v := r<<wordBits | uint64(m.words[i])
		m.words[i] = uint32(v / uint64(d))
		r = v % uint64(d)
	}

	m.trim()

	return uint32(r)
}

// trim drops most significant zero words.
func (m *Magnitude) trim() {
	n := len(m.words)
	for n > 0 && m.words[n-1] == 0 {
		n--
	}

	m.words = m.words[:n]
}
