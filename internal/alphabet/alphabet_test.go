package alphabet

import (
	"testing"

	"goenigma/internal/errors"
)

// ── Letter / index conversion ────────────────────────────────────────

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < Size; i++ {
		r, ok := IndexToLetter(i)
		if !ok {
			t.Fatalf("IndexToLetter(%d) failed", i)
		}
		got, ok := LetterToIndex(r)
		if !ok || got != i {
			t.Errorf("LetterToIndex(IndexToLetter(%d)) = %d, %v", i, got, ok)
		}
	}
}

func TestLetterToIndex(t *testing.T) {
	tests := []struct {
		in     rune
		want   int
		wantOK bool
	}{
		{'A', 0, true},
		{'a', 0, true},
		{'Z', 25, true},
		{'z', 25, true},
		{'m', 12, true},
		{'1', 0, false},
		{' ', 0, false},
		{'@', 0, false},
		{'[', 0, false},
		{'Ä', 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, ok := LetterToIndex(tt.in)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("LetterToIndex(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLetterUppercasesThroughIndex(t *testing.T) {
	for ch := 'a'; ch <= 'z'; ch++ {
		i, _ := LetterToIndex(ch)
		r, _ := IndexToLetter(i)
		if r != ch-'a'+'A' {
			t.Errorf("%q -> %q, want uppercase", ch, r)
		}
	}
}

func TestIndexToLetter_OutOfRange(t *testing.T) {
	for _, i := range []int{-1, 26, 100} {
		if _, ok := IndexToLetter(i); ok {
			t.Errorf("IndexToLetter(%d) should fail", i)
		}
	}
}

// ── CleanText / Group ────────────────────────────────────────────────

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"He11o, World!", "HEOWORLD"},
		{"HELLO WORLD", "HELLOWORLD"},
		{"", ""},
		{"1234 !?", ""},
		{"über", "BER"},
		{"a\tb\nc", "ABC"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"QXHMTABCDE", 5, "QXHMT ABCDE"},
		{"QXHMTAB", 5, "QXHMT AB"},
		{"QXH", 5, "QXH"},
		{"QXHMT", 5, "QXHMT"},
		{"ABCDEF", 0, "ABCDEF"},
		{"ABCDEF", 2, "AB CD EF"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := Group(tt.in, tt.n); got != tt.want {
			t.Errorf("Group(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

// ── Permutation ──────────────────────────────────────────────────────

func TestParseWiring(t *testing.T) {
	tests := []struct {
		name    string
		wiring  string
		wantErr bool
	}{
		{"rotor I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", false},
		{"lowercase", "ekmflgdqvzntowyhxuspaibrcj", false},
		{"identity", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", false},
		{"too short", "ABC", true},
		{"too long", "ABCDEFGHIJKLMNOPQRSTUVWXYZA", true},
		{"duplicate", "AACDEFGHIJKLMNOPQRSTUVWXYZ", true},
		{"non-letter", "ABCDEFGHIJKLMNOPQRSTUVWXY1", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseWiring(tt.wiring)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrMalformedPermutation) {
					t.Errorf("error %v should wrap ErrMalformedPermutation", err)
				}
				return
			}
			if p.String() != CleanText(tt.wiring) {
				t.Errorf("String() = %q, want %q", p.String(), CleanText(tt.wiring))
			}
		})
	}
}

func TestNewPermutation_Rejects(t *testing.T) {
	valid := make([]int, Size)
	for i := range valid {
		valid[i] = i
	}

	outOfRange := append([]int(nil), valid...)
	outOfRange[3] = 26

	negative := append([]int(nil), valid...)
	negative[0] = -1

	tests := []struct {
		name  string
		table []int
	}{
		{"nil", nil},
		{"short", valid[:25]},
		{"out of range", outOfRange},
		{"negative", negative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPermutation(tt.table); !errors.Is(err, errors.ErrMalformedPermutation) {
				t.Errorf("error = %v, want ErrMalformedPermutation", err)
			}
		})
	}

	if _, err := NewPermutation(valid); err != nil {
		t.Errorf("identity rejected: %v", err)
	}
}

func TestPermutation_Inverse(t *testing.T) {
	p, err := ParseWiring("EKMFLGDQVZNTOWYHXUSPAIBRCJ")
	if err != nil {
		t.Fatal(err)
	}
	q := p.Inverse()
	for i := 0; i < Size; i++ {
		if q[p[i]] != i || p[q[i]] != i {
			t.Fatalf("inverse mismatch at %d", i)
		}
	}
	if p.IsInvolution() {
		t.Error("rotor I wiring is not an involution")
	}
}

func TestPermutation_IsInvolution(t *testing.T) {
	for _, w := range []string{
		"EJMZALYXVBWFCRQUONTSPIKHGD",
		"YRUHQSLDPXNGOKMIEBFZCWVJAT",
		"FVPJIAOYEDRZXWGCTKUQSBNMHL",
	} {
		p, err := ParseWiring(w)
		if err != nil {
			t.Fatal(err)
		}
		if !p.IsInvolution() {
			t.Errorf("%s should be an involution", w)
		}
	}
}
