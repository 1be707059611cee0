// Package base58 encodes with the Bitcoin base58 alphabet.
package base58

import (
	"github.com/calebcase/multibase/preset"
	"github.com/calebcase/multibase/transcoder"
)

var std = New()

// New returns a base58 transcoder.
func New(opts ...transcoder.Option) *transcoder.Transcoder {
	return transcoder.MustNew(preset.Base58, opts...)
}

// Encode returns the base58 text for data.
func Encode(data []byte) string {
	return std.Encode(data)
}

// Decode returns the bytes for base58 text.
func Decode(text string) ([]byte, error) {
	return std.Decode(text)
}
