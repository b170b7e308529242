// Package core is the orchestration layer.  It composes the cipher
// machine, a session and the metrics collector into complete
// operational modes and provides a builder that selects the right mode
// from a Config.
//
// Architecture layers (bottom → top):
//
//	alphabet  →  plugboard/rotor/reflector  →  machine  →  session  →  core  →  cmd (CLI)
package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"goenigma/internal/metrics"
)

// Mode represents a complete operational mode of goenigma (cipher,
// keyboard, keygen or dry run).  Each mode owns its input and output
// for the duration of Run.
type Mode interface {
	Run(ctx context.Context) error
}

// streams holds the injectable I/O shared by every mode.  Nil fields
// fall back to the process's standard streams.
type streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (s *streams) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s *streams) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

func (s *streams) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}

// reportStats writes the collector's JSON snapshot.
func reportStats(w io.Writer, c *metrics.Collector) {
	fmt.Fprintln(w, c.JSON())
}
