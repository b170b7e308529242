package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, presets, key sheets and environment variable
// loading.

const (
	// DefaultRotors is the left-to-right rotor selection.
	DefaultRotors = "I,II,III"

	// DefaultPositions are the starting window letters.
	DefaultPositions = "AAA"

	// DefaultRings are the ring settings.
	DefaultRings = "AAA"

	// DefaultReflector is the reflector selector.
	DefaultReflector = "B"

	// DefaultGroupSize is the traditional five-letter output block.
	DefaultGroupSize = 5

	// DefaultKeygenDays is how many entries --keygen writes.
	DefaultKeygenDays = 31

	// MaxKeySheetDays bounds the number of entries in a generated sheet.
	MaxKeySheetDays = 366

	// MaxPlugboardPairs is the most pairs 26 letters allow.
	MaxPlugboardPairs = 13
)

// Defaults returns a Config populated with the default machine.
func Defaults() *Config {
	return &Config{
		Rotors:    DefaultRotors,
		Positions: DefaultPositions,
		Rings:     DefaultRings,
		Reflector: DefaultReflector,
		GroupSize: DefaultGroupSize,
		Days:      DefaultKeygenDays,
	}
}
