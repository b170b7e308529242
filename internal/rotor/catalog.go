package rotor

import (
	"fmt"

	"goenigma/internal/errors"
)

// Historical rotor types.  The tables are bit-exact reproductions.
var (
	I   = Spec{Name: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notch: 'Q'}
	II  = Spec{Name: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notch: 'E'}
	III = Spec{Name: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notch: 'V'}
	IV  = Spec{Name: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notch: 'J'}
	V   = Spec{Name: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notch: 'Z'}
)

var catalog = []Spec{I, II, III, IV, V}

// Lookup returns the rotor type named by selector ("I" … "V").
func Lookup(selector string) (Spec, error) {
	for _, s := range catalog {
		if s.Name == selector {
			return s, nil
		}
	}
	return Spec{}, fmt.Errorf("%w: rotor type %q (want one of %v)",
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
