// Package rotor implements the rotating substitution wheels of the
// cipher machine and the catalog of historical wirings.
package rotor

import (
	"fmt"

	"goenigma/internal/alphabet"
	"goenigma/internal/errors"
)

// Spec describes a rotor type: its wiring and turnover notch.
type Spec struct {
	Name   string
	Wiring string // 26 letters; offset i holds the image of index i
	Notch  rune
}

// Rotor is a fixed permutation plus a mutable ring setting and
// rotational position.  The inverse table is derived once in New.
type Rotor struct {
	name     string
	wiring   alphabet.Permutation
	inverse  alphabet.Permutation
	notch    int
	ring     int
	position int
}

// New builds a rotor of the given type.  The wiring must be a valid
// permutation, the notch a letter, and ringSetting and position must
// lie in [0,25].
func New(spec Spec, ringSetting, position int) (*Rotor, error) {
	wiring, err := alphabet.ParseWiring(spec.Wiring)
	if err != nil {
		return nil, fmt.Errorf("rotor %s: %w", spec.Name, err)
	}
	notch, ok := alphabet.LetterToIndex(spec.Notch)
	if !ok {
		return nil, fmt.Errorf("rotor %s: notch: %w: %q", spec.Name, errors.ErrInvalidLetter, spec.Notch)
	}
	if !inRange(ringSetting) {
		return nil, fmt.Errorf("rotor %s: %w: ring setting %d outside 0-25",
			spec.Name, errors.ErrInvalidLetter, ringSetting)
	}
	if !inRange(position) {
		return nil, fmt.Errorf("rotor %s: %w: position %d outside 0-25",
			spec.Name, errors.ErrInvalidLetter, position)
	}

	return &Rotor{
		name:     spec.Name,
		wiring:   wiring,
		inverse:  wiring.Inverse(),
		notch:    notch,
		ring:     ringSetting,
		position: position,
	}, nil
}

// Forward passes c through the wiring under the current position and
// ring offsets.  Non-letters are returned unchanged.
func (r *Rotor) Forward(c rune) rune {
	return r.through(&r.wiring, c)
}

// Backward passes c through the inverse wiring.  For a fixed position
// and ring setting, Backward(Forward(c)) == c.
func (r *Rotor) Backward(c rune) rune {
	return r.through(&r.inverse, c)
}

func (r *Rotor) through(table *alphabet.Permutation, c rune) rune {
	x, ok := alphabet.LetterToIndex(c)
	if !ok {
		return c
	}
	adjusted := (x + r.position - r.ring + alphabet.Size) % alphabet.Size
	t := table[adjusted]
	return alphabet.MustLetter((t - r.position + r.ring + alphabet.Size) % alphabet.Size)
}

// Step advances the rotor by one position and reports whether it was
// sitting on its notch before moving.
func (r *Rotor) Step() bool {
	atNotch := r.position == r.notch
	r.position = (r.position + 1) % alphabet.Size
	return atNotch
}

// AtNotch reports whether the rotor currently sits on its notch.
func (r *Rotor) AtNotch() bool { return r.position == r.notch }

// SetPosition replaces the position.  Values outside [0,25] are ignored.
func (r *Rotor) SetPosition(p int) {
	if inRange(p) {
		r.position = p
	}
}

// SetRingSetting replaces the ring setting.  Values outside [0,25] are
// ignored.
func (r *Rotor) SetRingSetting(rs int) {
	if inRange(rs) {
		r.ring = rs
	}
}

func (r *Rotor) Name() string     { return r.name }
func (r *Rotor) Position() int    { return r.position }
func (r *Rotor) RingSetting() int { return r.ring }
func (r *Rotor) Notch() int       { return r.notch }

// PositionLetter is the letter shown in the rotor's window.
func (r *Rotor) PositionLetter() rune { return alphabet.MustLetter(r.position) }

// RingSettingLetter is the ring setting as a letter.
func (r *Rotor) RingSettingLetter() rune { return alphabet.MustLetter(r.ring) }

// Wiring returns the rotor's forward table.
func (r *Rotor) Wiring() alphabet.Permutation { return r.wiring }

func inRange(v int) bool { return v >= 0 && v < alphabet.Size }
