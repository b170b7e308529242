// Package config defines the runtime configuration for goenigma and
// provides helpers for parsing rotor lists, letter triples, presets and
// key sheets.
package config

import (
	"fmt"
	"strings"

	"goenigma/internal/alphabet"
	"goenigma/internal/errors"
	"goenigma/internal/machine"
	"goenigma/internal/plugboard"
	"goenigma/internal/reflector"
	"goenigma/internal/rotor"
)

// Config holds every tuneable for a single goenigma run.
type Config struct {
	// ── Machine ──────────────────────────────────────────────────────
	Rotors    string // "I,II,III", left to right
	Positions string // "AAA"
	Rings     string // "AAA"
	Reflector string // "B"
	Plugboard string // "AB CD EF"

	// ── Key sources ──────────────────────────────────────────────────
	Preset   string // named preset applied under explicit flags
	KeySheet string // path to a YAML key sheet
	Day      int    // key sheet entry to use

	// ── Operation ────────────────────────────────────────────────────
	Text        string // message text; empty → read stdin
	Decrypt     bool   // wording only; the cipher is self-reciprocal
	Interactive bool   // keyboard mode
	GroupSize   int    // output block size, 0 = no grouping

	// ── Key generation ───────────────────────────────────────────────
	Keygen    bool
	Days      int
	Seed      uint64
	SeedSet   bool // true when Seed was given explicitly
	Pairs     int  // plugboard pairs per key, 0 = random 5-10
	SheetName string

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Stats   bool
	DryRun  bool
}

// ── Field parsers ────────────────────────────────────────────────────

// ParseRotorSpec splits "I,II,III" (commas and/or spaces) into three
// rotor selectors and checks each against the rotor catalog.
func ParseRotorSpec(spec string) ([3]string, error) {
	var out [3]string
	parts := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 3 {
		return out, &errors.ConfigError{
			Field:   "rotors",
			Value:   spec,
			Message: fmt.Sprintf("need exactly 3 rotor types, got %d", len(parts)),
			Hint:    "e.g. --rotors I,II,III (choose from " + strings.Join(rotor.Names(), " ") + ")",
		}
	}
	for i, p := range parts {
		name := strings.ToUpper(p)
		if _, err := rotor.Lookup(name); err != nil {
			return out, &errors.ConfigError{
				Field: "rotors",
				Value: spec,
				Err:   err,
			}
		}
		out[i] = name
	}
	return out, nil
}

// ParseLetters reads a three-letter setting such as "ADU" or "a d u"
// for the named field.  Whitespace is ignored; anything else that is
// not a letter is an error.
func ParseLetters(field, s string) ([3]rune, error) {
	var out [3]rune
	compact := strings.Join(strings.Fields(s), "")
	if len([]rune(compact)) != 3 {
		return out, &errors.ConfigError{
			Field:   field,
			Value:   s,
			Message: "need exactly 3 letters",
			Hint:    fmt.Sprintf("e.g. --%s ADU", field),
		}
	}
	for i, r := range []rune(compact) {
		idx, ok := alphabet.LetterToIndex(r)
		if !ok {
			return out, &errors.ConfigError{
				Field: field,
				Value: s,
				Err:   fmt.Errorf("%w: %q", errors.ErrInvalidLetter, r),
			}
		}
		out[i] = alphabet.MustLetter(idx)
	}
	return out, nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.GroupSize < 0 {
		return &errors.ConfigError{Field: "group", Value: c.GroupSize, Message: "must not be negative"}
	}
	if c.Interactive && c.Keygen {
		return &errors.ConfigError{Field: "keygen", Message: "cannot be combined with --interactive"}
	}
	if c.Interactive && c.Text != "" {
		return &errors.ConfigError{
			Field:   "interactive",
			Message: "takes no message text",
			Hint:    "type the message after the prompt instead",
		}
	}
	if c.KeySheet != "" && c.Day < 1 {
		return &errors.ConfigError{
			Field:   "day",
			Value:   c.Day,
			Message: "a key sheet entry is required with --keysheet",
			Hint:    "e.g. --keysheet sheet.yaml --day 3",
		}
	}

	if c.Keygen {
		if c.Days < 1 || c.Days > MaxKeySheetDays {
			return &errors.ConfigError{
				Field:   "days",
				Value:   c.Days,
				Message: fmt.Sprintf("must be between 1 and %d", MaxKeySheetDays),
			}
		}
		if c.Pairs < 0 || c.Pairs > MaxPlugboardPairs {
			return &errors.ConfigError{
				Field:   "pairs",
				Value:   c.Pairs,
				Message: fmt.Sprintf("must be between 0 and %d", MaxPlugboardPairs),
			}
		}
		// Generated keys do not depend on the machine flags.
		return nil
	}

	_, err := c.Settings()
	return err
}

// Settings converts the machine fields into machine.Settings, checking
// every field on the way.
func (c *Config) Settings() (machine.Settings, error) {
	var s machine.Settings
	var err error

	if s.Rotors, err = ParseRotorSpec(c.Rotors); err != nil {
		return s, err
	}
	if s.Positions, err = ParseLetters("positions", c.Positions); err != nil {
		return s, err
	}
	if s.Rings, err = ParseLetters("rings", c.Rings); err != nil {
		return s, err
	}

	s.Reflector = strings.ToUpper(strings.TrimSpace(c.Reflector))
	if _, err := reflector.Lookup(s.Reflector); err != nil {
		return s, &errors.ConfigError{
			Field: "reflector",
			Value: c.Reflector,
			Err:   err,
		}
	}

	pb, err := plugboard.Parse(c.Plugboard)
	if err != nil {
		return s, &errors.ConfigError{
			Field: "plugboard",
			Value: c.Plugboard,
			Err:   err,
			Hint:  "pairs are two distinct letters separated by spaces, e.g. \"AB CD EF\"",
		}
	}
	s.Plugboard = pb.String()
	return s, nil
}
