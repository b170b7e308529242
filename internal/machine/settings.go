package machine

import (
	"fmt"

	"goenigma/internal/alphabet"
	"goenigma/internal/errors"
	"goenigma/internal/plugboard"
	"goenigma/internal/reflector"
	"goenigma/internal/rotor"
)

// Settings is everything needed to build a machine: rotor selectors,
// window letters and ring letters (left to right), a reflector
// selector and a plugboard pair string.
type Settings struct {
	Rotors    [3]string
	Positions [3]rune
	Rings     [3]rune
	Reflector string
	Plugboard string
}

// Standard returns settings for rotors I, II, III with reflector B.
func Standard(positions, rings [3]rune, plugs string) Settings {
	return Settings{
		Rotors:    [3]string{rotor.I.Name, rotor.II.Name, rotor.III.Name},
		Positions: positions,
		Rings:     rings,
		Reflector: reflector.B.Name,
		Plugboard: plugs,
	}
}

// Build looks up every selector, validates every letter and assembles
// a machine.  The first failure is returned as an
// *errors.ComponentError naming the offending part.
func Build(s Settings, opts ...Option) (*Machine, error) {
	var rotors [3]*rotor.Rotor
	for i, sel := range s.Rotors {
		spec, err := rotor.Lookup(sel)
		if err != nil {
			return nil, errors.Component("rotor", slotNames[i], sel, err)
		}
		ring, err := letterIndex("ring setting", s.Rings[i])
		if err != nil {
			return nil, errors.Component("rotor", slotNames[i], sel, err)
		}
		pos, err := letterIndex("position", s.Positions[i])
		if err != nil {
			return nil, errors.Component("rotor", slotNames[i], sel, err)
		}
		if rotors[i], err = rotor.New(spec, ring, pos); err != nil {
			return nil, errors.Component("rotor", slotNames[i], sel, err)
		}
	}

	rspec, err := reflector.Lookup(s.Reflector)
	if err != nil {
		return nil, errors.Component("reflector", "", s.Reflector, err)
	}
	refl, err := reflector.New(rspec)
	if err != nil {
		return nil, errors.Component("reflector", "", s.Reflector, err)
	}

	pb, err := plugboard.Parse(s.Plugboard)
	if err != nil {
		return nil, errors.Component("plugboard", "", s.Plugboard, err)
	}

	return New(rotors, refl, pb, opts...)
}

func letterIndex(what string, ch rune) (int, error) {
	i, ok := alphabet.LetterToIndex(ch)
	if !ok {
		return 0, fmt.Errorf("%s: %w: %q", what, errors.ErrInvalidLetter, ch)
	}
	return i, nil
}
