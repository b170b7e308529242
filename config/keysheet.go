package config

// keysheet.go - read-only YAML key sheets.
//
// A key sheet lists one machine setting per day:
//
//	keysheet:
//	  name: exercise-1
//	  entries:
//	    - day: 1
//	      rotors: [II, IV, V]
//	      rings: BUL
//	      positions: ADU
//	      reflector: B
//	      plugboard: AV BS CG DL FU HZ IN KM OW RX

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"goenigma/internal/machine"
)

type rawSheetFile struct {
	KeySheet KeySheet `yaml:"keysheet"`
}

// KeySheet is a named list of daily settings.
type KeySheet struct {
	Name    string     `yaml:"name,omitempty"`
	Entries []KeyEntry `yaml:"entries"`
}

// KeyEntry is one day's setting.  Empty fields leave the current
// configuration untouched when applied.
type KeyEntry struct {
	Day       int      `yaml:"day"`
	Rotors    []string `yaml:"rotors,flow"`
	Rings     string   `yaml:"rings,omitempty"`
	Positions string   `yaml:"positions,omitempty"`
	Reflector string   `yaml:"reflector,omitempty"`
	Plugboard string   `yaml:"plugboard,omitempty"`
}

// LoadKeySheet parses a key sheet YAML file.
func LoadKeySheet(path string) (*KeySheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	ks, err := ParseKeySheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ks, nil
}

// ParseKeySheet parses key sheet YAML bytes.  Unknown fields are
// rejected so that a misspelt key does not silently fall back to a
// default.
func ParseKeySheet(data []byte) (*KeySheet, error) {
	var raw rawSheetFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}

	ks := &raw.KeySheet
	if len(ks.Entries) == 0 {
		return nil, fmt.Errorf("key sheet has no entries")
	}
	seen := make(map[int]bool, len(ks.Entries))
	for i, e := range ks.Entries {
		if e.Day < 1 {
			return nil, fmt.Errorf("entry %d: day must be at least 1, got %d", i+1, e.Day)
		}
		if seen[e.Day] {
			return nil, fmt.Errorf("entry %d: day %d listed twice", i+1, e.Day)
		}
		seen[e.Day] = true
		if len(e.Rotors) != 0 && len(e.Rotors) != 3 {
			return nil, fmt.Errorf("day %d: need 3 rotors, got %d", e.Day, len(e.Rotors))
		}
	}
	return ks, nil
}

// Entry returns the setting for day.
func (ks *KeySheet) Entry(day int) (KeyEntry, error) {
	for _, e := range ks.Entries {
		if e.Day == day {
			return e, nil
		}
	}
	return KeyEntry{}, fmt.Errorf("key sheet %q has no entry for day %d", ks.Name, day)
}

// Days lists the days present, ascending.
func (ks *KeySheet) Days() []int {
	out := make([]int, 0, len(ks.Entries))
	for _, e := range ks.Entries {
		out = append(out, e.Day)
	}
	sort.Ints(out)
	return out
}

// Apply copies the entry's non-empty fields onto c.
func (e KeyEntry) Apply(c *Config) {
	if len(e.Rotors) == 3 {
		c.Rotors = strings.Join(e.Rotors, ",")
	}
	if e.Rings != "" {
		c.Rings = e.Rings
	}
	if e.Positions != "" {
		c.Positions = e.Positions
	}
	if e.Reflector != "" {
		c.Reflector = e.Reflector
	}
	if e.Plugboard != "" {
		c.Plugboard = e.Plugboard
	}
}

// EntryFromSettings turns machine settings into a key sheet entry.
func EntryFromSettings(day int, s machine.Settings) KeyEntry {
	return KeyEntry{
		Day:       day,
		Rotors:    []string{s.Rotors[0], s.Rotors[1], s.Rotors[2]},
		Rings:     string(s.Rings[:]),
		Positions: string(s.Positions[:]),
		Reflector: s.Reflector,
		Plugboard: s.Plugboard,
	}
}

// Marshal renders the sheet as YAML in the format ParseKeySheet reads.
func (ks *KeySheet) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(rawSheetFile{KeySheet: *ks}); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return buf.Bytes(), nil
}
