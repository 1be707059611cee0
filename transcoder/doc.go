// Package transcoder converts between byte strings and text written in an
// arbitrary alphabet.
//
// Encoding treats the input as a big-endian unsigned number and writes it in
// base N, where N is the size of the alphabet:
//
//  data:  00 00 ff ff
//          Z=2 | magnitude 0xffff
//  base58: "1" "1" | "LUv"
//  text:  "11LUv"
//
// Leading zero bytes carry no numeric value, so each one is written as a
// zero symbol (the first symbol of the alphabet) before the digits of the
// remaining magnitude. Decoding reverses this: the leading run of zero
// symbols becomes zero bytes and the remaining digits are accumulated back
// into the magnitude.
//
// Only whole leading zero bytes are preserved. Zero digits inside the most
// significant byte are dropped, so with the hex alphabet the byte 0x0f
// encodes as "f", not "0f".
//
// Engines
//
// Two engines implement Codec and always produce identical output:
//
//  Precision  magnitude arithmetic with math/big
//  Manual     magnitude arithmetic with integer.Magnitude (plain words)
//
// Engines are immutable after construction and safe for concurrent use.
package transcoder
