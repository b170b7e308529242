// Package plugboard implements the letter-pairing layer that sits in
// front of and behind the rotor stack.
//
// Pairs are stored as mirrored partner slots: inserting or removing a
// pair always touches both letters, so Process is an involution for
// every reachable state.
package plugboard

import (
	"fmt"
	"strings"

	"goenigma/internal/alphabet"
	"goenigma/internal/errors"
)

// Plugboard is a partial symmetric pairing over the alphabet.  The
// zero value is an empty board ready to use.
type Plugboard struct {
	// partner[i] is the index of i's partner plus one; 0 means unpaired.
	partner [alphabet.Size]uint8
	pairs   int
}

// New returns an empty plugboard.
func New() *Plugboard {
	return &Plugboard{}
}

// Parse builds a plugboard from whitespace-separated two-letter tokens
// such as "AB CD EF".  Empty or blank input yields an empty board.
// The first token to claim a letter wins; a later token reusing it is
// rejected.
func Parse(s string) (*Plugboard, error) {
	pb := New()
	for _, tok := range strings.Fields(s) {
		runes := []rune(tok)
		if len(runes) != 2 {
			return nil, fmt.Errorf("token %q: %w: want exactly 2 letters, got %d",
				tok, errors.ErrMalformedToken, len(runes))
		}
		if !alphabet.IsLetter(runes[0]) || !alphabet.IsLetter(runes[1]) {
			return nil, fmt.Errorf("token %q: %w: only letters may be paired",
				tok, errors.ErrInvalidLetter)
		}
		if err := pb.AddPair(runes[0], runes[1]); err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, err)
		}
	}
	return pb, nil
}

// AddPair connects a and b.  It fails when a and b are the same
// letter, when either is not a letter, or when either is already
// paired.
func (p *Plugboard) AddPair(a, b rune) error {
	ai, ok := alphabet.LetterToIndex(a)
	if !ok {
		return fmt.Errorf("%w: %q", errors.ErrInvalidLetter, a)
	}
	bi, ok := alphabet.LetterToIndex(b)
	if !ok {
		return fmt.Errorf("%w: %q", errors.ErrInvalidLetter, b)
	}
	if ai == bi {
		return fmt.Errorf("%w: %c cannot be paired with itself",
			errors.ErrPlugboardConflict, alphabet.MustLetter(ai))
	}
	if p.partner[ai] != 0 {
		return fmt.Errorf("%w: %c is already paired",
			errors.ErrPlugboardConflict, alphabet.MustLetter(ai))
	}
	if p.partner[bi] != 0 {
		return fmt.Errorf("%w: %c is already paired",
			errors.ErrPlugboardConflict, alphabet.MustLetter(bi))
	}

	p.partner[ai] = uint8(bi + 1)
	p.partner[bi] = uint8(ai + 1)
	p.pairs++
	return nil
}

// RemovePair disconnects a from its partner.
func (p *Plugboard) RemovePair(a rune) error {
	ai, ok := alphabet.LetterToIndex(a)
	if !ok {
		return fmt.Errorf("%w: %q", errors.ErrInvalidLetter, a)
	}
	if p.partner[ai] == 0 {
		return fmt.Errorf("%w: %c", errors.ErrNotPaired, alphabet.MustLetter(ai))
	}

	bi := int(p.partner[ai]) - 1
	p.partner[ai] = 0
	p.partner[bi] = 0
	p.pairs--
	return nil
}

// Process returns the partner of r, or r unchanged when it has none.
// Lower-case input is answered in upper case; non-letters pass
// through untouched.
func (p *Plugboard) Process(r rune) rune {
	i, ok := alphabet.LetterToIndex(r)
	if !ok {
		return r
	}
	if j := p.partner[i]; j != 0 {
		return alphabet.MustLetter(int(j) - 1)
	}
	return alphabet.MustLetter(i)
}

// Pairs returns the number of active pairs.
func (p *Plugboard) Pairs() int { return p.pairs }

// IsPaired reports whether r currently has a partner.
func (p *Plugboard) IsPaired(r rune) bool {
	i, ok := alphabet.LetterToIndex(r)
	return ok && p.partner[i] != 0
}

// Clear removes every pair.
func (p *Plugboard) Clear() {
	p.partner = [alphabet.Size]uint8{}
	p.pairs = 0
}

// String returns the canonical pair list, e.g. "AB CD EF".  Each pair
// appears once, headed by whichever of its letters comes first in the
// alphabet.  Parse(p.String()) reproduces p.
func (p *Plugboard) String() string {
	var (
		tokens []string
		used   [alphabet.Size]bool
	)
	for i, j := range p.partner {
		if j == 0 || used[i] {
			continue
		}
		k := int(j) - 1
		used[i], used[k] = true, true
		tokens = append(tokens, string([]rune{alphabet.MustLetter(i), alphabet.MustLetter(k)}))
	}
	return strings.Join(tokens, " ")
}
