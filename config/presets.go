package config

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a named machine selection.  Positions and rings are left
// to the operator.
type Preset struct {
	Name      string
	Rotors    string
	Reflector string
	Plugboard string
}

var presets = map[string]Preset{
	"standard": {
		Name:      "Standard",
		Rotors:    "I,II,III",
		Reflector: "B",
	},
	"kriegsmarine": {
		Name:      "Kriegsmarine",
		Rotors:    "I,II,III",
		Reflector: "B",
		Plugboard: "AB CD EF GH IJ KL",
	},
	"luftwaffe": {
		Name:      "Luftwaffe",
		Rotors:    "I,II,IV",
		Reflector: "B",
		Plugboard: "AB CD EF",
	},
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (want one of %s)",
			name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

// PresetNames lists the presets alphabetically.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for _, p := range presets {
		out = append(out, p.Name)
	}
	sort.Strings(out)
	return out
}

// Apply copies the preset's machine fields onto c.
func (p Preset) Apply(c *Config) {
	c.Rotors = p.Rotors
	c.Reflector = p.Reflector
	c.Plugboard = p.Plugboard
}
