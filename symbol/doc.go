// Package symbol splits encoded text into the units an alphabet is made of.
//
// A symbol is the smallest unit of encoded text. Depending on the Mode a
// symbol is a single byte, a single Unicode code point, or a single extended
// grapheme cluster (a user-perceived character, which may span several code
// points). Splitting must follow the same Mode that was used to split the
// alphabet, otherwise multi-byte alphabets are corrupted:
//
//  umbrella with variation selector (U+2602 U+FE0F)
//
//  Bytes:     e2 98 82 ef b8 8f   (6 symbols)
//  Runes:     U+2602, U+FE0F      (2 symbols)
//  Graphemes: U+2602 U+FE0F       (1 symbol)
//
// In Graphemes mode adjacent symbols must not join into a single cluster
// (a lone combining mark, or two regional indicators, would), since text is
// split again when decoding.
//
// Runes is the default. Invalid UTF-8 is never dropped: in Runes mode every
// byte that does not start a valid encoding becomes a symbol of its own.
package symbol
