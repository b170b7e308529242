package keygen

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"goenigma/internal/machine"
	"goenigma/internal/plugboard"
)

// FingerprintSize is the number of digest bytes kept.
const FingerprintSize = 8

// Fingerprint returns a short digest of s so that two operators can
// confirm they hold the same key without reading it aloud.  The
// plugboard is canonicalized first, so "BA DC" and "AB CD" agree.
// Settings whose plugboard does not parse are fingerprinted verbatim.
func Fingerprint(s machine.Settings) string {
	plugs := s.Plugboard
	if pb, err := plugboard.Parse(plugs); err == nil {
		plugs = pb.String()
	}

	canonical := fmt.Sprintf("rotors=%s|rings=%s|positions=%s|reflector=%s|plugboard=%s",
		strings.Join(s.Rotors[:], ","),
		string(s.Rings[:]),
		string(s.Positions[:]),
		s.Reflector,
		plugs)

	sum := blake2b.Sum256([]byte(canonical))
	enc := strings.ToUpper(hex.EncodeToString(sum[:FingerprintSize]))

	// XXXX-XXXX-XXXX-XXXX
	var groups []string
	for i := 0; i < len(enc); i += 4 {
		groups = append(groups, enc[i:i+4])
	}
	return strings.Join(groups, "-")
}
