// Package reflector implements the fixed, non-rotating wheel that
// sends the signal back through the rotor stack.
package reflector

import (
	"fmt"

	"goenigma/internal/alphabet"
	"goenigma/internal/errors"
)

// Spec describes a reflector type.
type Spec struct {
	Name   string
	Wiring string
}

// Historical reflector types.  All three are involutions.
var (
	A = Spec{Name: "A", Wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"}
	B = Spec{Name: "B", Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"}
	C = Spec{Name: "C", Wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"}
)

var catalog = []Spec{A, B, C}

// Reflector is an immutable permutation with a display name.
type Reflector struct {
	name   string
	wiring alphabet.Permutation
}

// New builds a reflector.  Any valid permutation is accepted; use
// IsInvolution to check whether reflecting twice is the identity.
func New(spec Spec) (*Reflector, error) {
	wiring, err := alphabet.ParseWiring(spec.Wiring)
	if err != nil {
		return nil, fmt.Errorf("reflector %s: %w", spec.Name, err)
	}
	return &Reflector{name: spec.Name, wiring: wiring}, nil
}

// Reflect is a direct table lookup.  Non-letters are returned unchanged.
func (r *Reflector) Reflect(c rune) rune {
	i, ok := alphabet.LetterToIndex(c)
	if !ok {
		return c
	}
	return alphabet.MustLetter(r.wiring[i])
}

// IsInvolution reports whether Reflect(Reflect(x)) == x for every letter.
func (r *Reflector) IsInvolution() bool { return r.wiring.IsInvolution() }

func (r *Reflector) Name() string { return r.name }

// Lookup returns the reflector type named by selector ("A", "B", "C").
func Lookup(selector string) (Spec, error) {
	for _, s := range catalog {
		if s.Name == selector {
			return s, nil
		}
	}
	return Spec{}, fmt.Errorf("%w: reflector type %q (want one of %v)",
		errors.ErrInvalidSelector, selector, Names())
}

// Names lists the catalog selectors in order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, s := range catalog {
		out[i] = s.Name
	}
	return out
}
