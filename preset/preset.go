// Package preset lists commonly used alphabets.
package preset

import (
	"sort"
	"strings"
)

// Alphabets.
const (
	Base2  = "01"
	Base8  = "01234567"
	Base10 = "0123456789"
	Base16 = "0123456789abcdef"
	Base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

	// Base58 is the Bitcoin alphabet. It leaves out 0, O, I and l.
	Base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	Base62 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

var presets = map[string]string{
	"base2":  Base2,
	"base8":  Base8,
	"base10": Base10,
	"base16": Base16,
	"hex":    Base16,
	"base36": Base36,
	"base58": Base58,
	"base62": Base62,
}

// Lookup returns the alphabet registered under name (case insensitive).
func Lookup(name string) (alphabet string, ok bool) {
	alphabet, ok = presets[strings.ToLower(name)]

	return alphabet, ok
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
