package alphabet

import (
	"fmt"
	"strings"

	"goenigma/internal/errors"
)

// Permutation is a bijection over the index domain, stored as a table
// addressed directly by index.  Obtain one from NewPermutation or
// ParseWiring so that the bijection has been checked.
type Permutation [Size]int

// NewPermutation validates table and copies it into a Permutation.
// Wrong length, out-of-range entries and repeated targets are
// rejected with ErrMalformedPermutation.
func NewPermutation(table []int) (Permutation, error) {
	var p Permutation
	if len(table) != Size {
		return p, fmt.Errorf("%w: want %d entries, got %d",
			errors.ErrMalformedPermutation, Size, len(table))
	}

	var seen [Size]bool
	for i, v := range table {
		if v < 0 || v >= Size {
			return p, fmt.Errorf("%w: entry %d is %d, outside 0-%d",
				errors.ErrMalformedPermutation, i, v, Size-1)
		}
		if seen[v] {
			return p, fmt.Errorf("%w: target %c appears more than once",
				errors.ErrMalformedPermutation, MustLetter(v))
		}
		seen[v] = true
		p[i] = v
	}
	return p, nil
}

// ParseWiring reads a 26-letter wiring string such as
// "EKMFLGDQVZNTOWYHXUSPAIBRCJ", where the letter at offset i is the
// image of index i.
func ParseWiring(wiring string) (Permutation, error) {
	table := make([]int, 0, Size)
	for _, ch := range wiring {
		i, ok := LetterToIndex(ch)
		if !ok {
			return Permutation{}, fmt.Errorf("%w: wiring contains %q",
				errors.ErrMalformedPermutation, ch)
		}
		table = append(table, i)
	}
	return NewPermutation(table)
}

// Inverse returns q such that q[p[i]] == i for every i.
func (p Permutation) Inverse() Permutation {
	var q Permutation
	for i, v := range p {
		q[v] = i
	}
	return q
}

// IsInvolution reports whether p is its own inverse.
func (p Permutation) IsInvolution() bool {
	for i, v := range p {
		if p[v] != i {
			return false
		}
	}
	return true
}

// String renders p as a 26-letter wiring string.
func (p Permutation) String() string {
	var b strings.Builder
	b.Grow(Size)
	for _, v := range p {
		b.WriteRune(MustLetter(v))
	}
	return b.String()
}
