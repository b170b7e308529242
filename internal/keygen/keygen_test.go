package keygen

import (
	"regexp"
	"strings"
	"testing"

	"goenigma/internal/machine"
	"goenigma/internal/plugboard"
)

func TestGenerator_SettingsBuild(t *testing.T) {
	g := New(42, Options{})
	for i := 0; i < 200; i++ {
		s := g.Settings()
		if _, err := machine.Build(s); err != nil {
			t.Fatalf("draw %d: %+v does not build: %v", i, s, err)
		}
		if s.Rotors[0] == s.Rotors[1] || s.Rotors[1] == s.Rotors[2] || s.Rotors[0] == s.Rotors[2] {
			t.Errorf("draw %d: rotors not distinct: %v", i, s.Rotors)
		}
		if s.Reflector != "B" && s.Reflector != "C" {
			t.Errorf("draw %d: reflector %q", i, s.Reflector)
		}
		pb, err := plugboard.Parse(s.Plugboard)
		if err != nil {
			t.Fatal(err)
		}
		if pb.Pairs() < DefaultMinPairs || pb.Pairs() > DefaultMaxPairs {
			t.Errorf("draw %d: %d pairs", i, pb.Pairs())
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a, b := New(7, Options{}), New(7, Options{})
	for i := 0; i < 10; i++ {
		if sa, sb := a.Settings(), b.Settings(); sa != sb {
			t.Fatalf("draw %d differs: %+v vs %+v", i, sa, sb)
		}
	}
	if New(7, Options{}).Settings() == New(8, Options{}).Settings() {
		t.Error("different seeds produced the same key")
	}
}

func TestGenerator_PairOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		min, max int
	}{
		{"fixed", Options{MinPairs: 10, MaxPairs: 10}, 10, 10},
		{"clamped to 13", Options{MinPairs: 20, MaxPairs: 20}, 13, 13},
		{"range", Options{MinPairs: 1, MaxPairs: 3}, 1, 3},
		{"unset uses defaults", Options{}, DefaultMinPairs, DefaultMaxPairs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(1, tt.opts)
			for i := 0; i < 50; i++ {
				pb, err := plugboard.Parse(g.Plugboard())
				if err != nil {
					t.Fatal(err)
				}
				if n := pb.Pairs(); n < tt.min || n > tt.max {
					t.Fatalf("pairs = %d, want %d-%d", n, tt.min, tt.max)
				}
			}
		})
	}
}

func TestGenerator_Reflectors(t *testing.T) {
	g := New(3, Options{Reflectors: []string{"A"}})
	for i := 0; i < 20; i++ {
		if r := g.Settings().Reflector; r != "A" {
			t.Fatalf("reflector = %q", r)
		}
	}
}

func TestGenerator_Positions(t *testing.T) {
	g := New(9, Options{})
	for i := 0; i < 100; i++ {
		for _, r := range g.Positions() {
			if r < 'A' || r > 'Z' {
				t.Fatalf("bad letter %q", r)
			}
		}
	}
}

// ── Fingerprint ──────────────────────────────────────────────────────

var fingerprintRe = regexp.MustCompile(`^[0-9A-F]{4}(-[0-9A-F]{4}){3}$`)

func TestFingerprint(t *testing.T) {
	s := machine.Standard([3]rune{'A', 'B', 'C'}, [3]rune{'D', 'E', 'F'}, "AB CD")
	fp := Fingerprint(s)
	if !fingerprintRe.MatchString(fp) {
		t.Fatalf("fingerprint %q has wrong shape", fp)
	}

	same := s
	same.Plugboard = "DC  ba"
	if Fingerprint(same) != fp {
		t.Error("equivalent plugboards should fingerprint the same")
	}

	for name, mutate := range map[string]func(*machine.Settings){
		"rotor":     func(s *machine.Settings) { s.Rotors[2] = "IV" },
		"ring":      func(s *machine.Settings) { s.Rings[0] = 'Z' },
		"position":  func(s *machine.Settings) { s.Positions[1] = 'Z' },
		"reflector": func(s *machine.Settings) { s.Reflector = "C" },
		"plugboard": func(s *machine.Settings) { s.Plugboard = "AB CE" },
	} {
		other := s
		mutate(&other)
		if Fingerprint(other) == fp {
			t.Errorf("changing the %s should change the fingerprint", name)
		}
	}
}

func TestFingerprint_InvalidPlugboardStillHashes(t *testing.T) {
	s := machine.Standard([3]rune{'A', 'A', 'A'}, [3]rune{'A', 'A', 'A'}, "ABC")
	if fp := Fingerprint(s); strings.Count(fp, "-") != 3 {
		t.Errorf("fingerprint = %q", fp)
	}
}
