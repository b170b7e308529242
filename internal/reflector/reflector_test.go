package reflector

import (
	"testing"

	"goenigma/internal/errors"
)

func TestReflect_B(t *testing.T) {
	r, err := New(B)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Reflect('A'); got != 'Y' {
		t.Errorf("Reflect(A) = %c, want Y", got)
	}
	if got := r.Reflect('Y'); got != 'A' {
		t.Errorf("Reflect(Y) = %c, want A", got)
	}
	if got := r.Reflect('-'); got != '-' {
		t.Errorf("Reflect('-') = %q", got)
	}
}

func TestCatalog_Involutions(t *testing.T) {
	for _, name := range Names() {
		spec, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		r, err := New(spec)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !r.IsInvolution() {
			t.Errorf("reflector %s should be an involution", name)
		}
		for c := 'A'; c <= 'Z'; c++ {
			if got := r.Reflect(r.Reflect(c)); got != c {
				t.Errorf("%s: Reflect(Reflect(%c)) = %c", name, c, got)
			}
		}
		if r.Name() != name {
			t.Errorf("Name() = %q, want %q", r.Name(), name)
		}
	}
}

func TestNew_AcceptsNonInvolution(t *testing.T) {
	// A rotor wiring is a valid permutation but not an involution.
	r, err := New(Spec{Name: "custom", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ"})
	if err != nil {
		t.Fatalf("valid permutation rejected: %v", err)
	}
	if r.IsInvolution() {
		t.Error("IsInvolution() should be false")
	}
}

func TestNew_RejectsMalformed(t *testing.T) {
	for _, w := range []string{"", "YRUHQ", "YYUHQSLDPXNGOKMIEBFZCWVJAT", "YRUHQSLDPXNGOKMIEBFZCWVJA1"} {
		if _, err := New(Spec{Name: "bad", Wiring: w}); !errors.Is(err, errors.ErrMalformedPermutation) {
			t.Errorf("New(%q) error = %v, want ErrMalformedPermutation", w, err)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, s := range []string{"D", "", "b", "UKW-B"} {
		if _, err := Lookup(s); !errors.Is(err, errors.ErrInvalidSelector) {
			t.Errorf("Lookup(%q) error = %v", s, err)
		}
	}
}
