package core

import (
	"context"
	"fmt"

	"goenigma/internal/keygen"
	"goenigma/internal/session"
)

// DryRunMode prints the assembled machine and its fingerprint without
// ciphering anything.
type DryRunMode struct {
	Session *session.Session

	streams
}

// Run writes the summary to stdout.
func (m *DryRunMode) Run(ctx context.Context) error {
	_, err := fmt.Fprintf(m.stdout(), "%s\nFingerprint:   %s\n",
		m.Session.Summary(), keygen.Fingerprint(m.Session.Settings()))
	return err
}
