package plugboard

import (
	"testing"

	"goenigma/internal/errors"
)

// ── Parse ────────────────────────────────────────────────────────────

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPairs int
		wantStr   string
		wantErr   error
	}{
		{"empty", "", 0, "", nil},
		{"whitespace", "   \t ", 0, "", nil},
		{"three pairs", "AB CD EF", 3, "AB CD EF", nil},
		{"lowercase", "ab cd", 2, "AB CD", nil},
		{"reversed heads", "ZA YB", 2, "AZ BY", nil},
		{"extra spacing", "  QW\tER  ", 2, "ER QW", nil},
		{"three letters", "ABC", 0, "", errors.ErrMalformedToken},
		{"one letter", "AB C", 0, "", errors.ErrMalformedToken},
		{"self pair", "AA", 0, "", errors.ErrPlugboardConflict},
		{"digit", "A1", 0, "", errors.ErrInvalidLetter},
		{"reuse first", "AB AC", 0, "", errors.ErrPlugboardConflict},
		{"reuse second", "AB CB", 0, "", errors.ErrPlugboardConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if pb.Pairs() != tt.wantPairs {
				t.Errorf("Pairs() = %d, want %d", pb.Pairs(), tt.wantPairs)
			}
			if got := pb.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestParse_CanonicalRoundTrip(t *testing.T) {
	pb, err := Parse("KL AB ZC")
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(pb.String())
	if err != nil {
		t.Fatal(err)
	}
	if again.String() != pb.String() {
		t.Errorf("round trip %q -> %q", pb.String(), again.String())
	}
}

// ── AddPair / RemovePair ─────────────────────────────────────────────

func TestAddPair(t *testing.T) {
	pb := New()
	if err := pb.AddPair('A', 'B'); err != nil {
		t.Fatal(err)
	}
	if !pb.IsPaired('A') || !pb.IsPaired('b') {
		t.Error("both letters should be paired")
	}
	if pb.IsPaired('C') {
		t.Error("C should not be paired")
	}

	for _, tc := range []struct{ a, b rune }{{'A', 'C'}, {'C', 'B'}, {'C', 'C'}} {
		if err := pb.AddPair(tc.a, tc.b); !errors.Is(err, errors.ErrPlugboardConflict) {
			t.Errorf("AddPair(%c, %c) error = %v, want conflict", tc.a, tc.b, err)
		}
	}
	if err := pb.AddPair('C', '!'); !errors.Is(err, errors.ErrInvalidLetter) {
		t.Errorf("non-letter error = %v", err)
	}
	if pb.Pairs() != 1 {
		t.Errorf("Pairs() = %d after failed inserts, want 1", pb.Pairs())
	}
}

func TestRemovePair(t *testing.T) {
	pb, err := Parse("AB CD")
	if err != nil {
		t.Fatal(err)
	}
	if err := pb.RemovePair('B'); err != nil {
		t.Fatal(err)
	}
	if pb.IsPaired('A') || pb.IsPaired('B') {
		t.Error("both directions should be removed")
	}
	if pb.Pairs() != 1 {
		t.Errorf("Pairs() = %d, want 1", pb.Pairs())
	}
	if err := pb.RemovePair('A'); !errors.Is(err, errors.ErrNotPaired) {
		t.Errorf("error = %v, want ErrNotPaired", err)
	}
	if err := pb.AddPair('A', 'B'); err != nil {
		t.Errorf("letters should be free again: %v", err)
	}
}

func TestClear(t *testing.T) {
	pb, _ := Parse("AB CD EF")
	pb.Clear()
	if pb.Pairs() != 0 || pb.String() != "" {
		t.Errorf("after Clear: pairs=%d str=%q", pb.Pairs(), pb.String())
	}
	if pb.Process('A') != 'A' {
		t.Error("cleared board should pass letters through")
	}
}

// ── Process ──────────────────────────────────────────────────────────

func TestProcess(t *testing.T) {
	pb, _ := Parse("AB CD")
	tests := []struct {
		in, want rune
	}{
		{'A', 'B'}, {'B', 'A'}, {'C', 'D'}, {'D', 'C'},
		{'E', 'E'}, {'Z', 'Z'}, {'a', 'B'}, {'1', '1'},
	}
	for _, tt := range tests {
		if got := pb.Process(tt.in); got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProcess_Involution(t *testing.T) {
	boards := []string{"", "AB", "AB CD EF GH IJ KL MN OP QR ST UV WX YZ", "QZ MA"}
	for _, s := range boards {
		pb, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		for r := 'A'; r <= 'Z'; r++ {
			if got := pb.Process(pb.Process(r)); got != r {
				t.Errorf("board %q: Process(Process(%c)) = %c", s, r, got)
			}
		}
	}
}

func TestZeroValue(t *testing.T) {
	var pb Plugboard
	if pb.Process('Q') != 'Q' || pb.Pairs() != 0 {
		t.Error("zero value should be an empty board")
	}
	if err := pb.AddPair('Q', 'W'); err != nil {
		t.Fatal(err)
	}
	if pb.Process('W') != 'Q' {
		t.Error("zero value should accept pairs")
	}
}
