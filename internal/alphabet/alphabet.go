// Package alphabet converts between the 26 Latin letters and their
// index domain [0,25] and normalizes text for the cipher.
//
// Everything that reaches the rotors has passed through CleanText, so
// the signal path itself never sees an invalid character.
package alphabet

import "strings"

// Size is the number of letters in the alphabet.
const Size = 26

// LetterToIndex maps 'A'/'a' to 0 … 'Z'/'z' to 25.  The second result
// is false for anything that is not an ASCII letter.
func LetterToIndex(ch rune) (int, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return int(ch - 'A'), true
	case ch >= 'a' && ch <= 'z':
		return int(ch - 'a'), true
	default:
		return 0, false
	}
}

// IndexToLetter maps 0 … 25 to 'A' … 'Z'.
func IndexToLetter(i int) (rune, bool) {
	if i < 0 || i >= Size {
		return 0, false
	}
	return rune('A' + i), true
}

// MustLetter is IndexToLetter for indices the caller already knows to
// be in range.  It panics otherwise.
func MustLetter(i int) rune {
	r, ok := IndexToLetter(i)
	if !ok {
		panic("alphabet: index out of range")
	}
	return r
}

// IsLetter reports whether ch is an ASCII letter.
func IsLetter(ch rune) bool {
	_, ok := LetterToIndex(ch)
	return ok
}

// CleanText keeps only the ASCII letters of s, upper-cased, in order.
// Digits, punctuation and whitespace are dropped, not substituted.
func CleanText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if i, ok := LetterToIndex(ch); ok {
			b.WriteByte(byte('A' + i))
		}
	}
	return b.String()
}

// Group splits s into blocks of n runes separated by a single space.
// It is a presentation helper; n <= 0 returns s unchanged.
func Group(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	count := 0
	for _, ch := range s {
		if count > 0 && count%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
		count++
	}
	return b.String()
}
