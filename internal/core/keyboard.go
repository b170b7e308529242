package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"

	"goenigma/internal/metrics"
	"goenigma/internal/session"
	"goenigma/util"
)

// Control keys understood by KeyboardMode.
const (
	keyInterrupt = 0x03 // Ctrl-C
	keyEOF       = 0x04 // Ctrl-D
	keyReset     = 0x12 // Ctrl-R
)

// KeyboardMode ciphers keystrokes one at a time, lighting one lamp per
// letter like the machine's lampboard.  When Fd refers to a terminal it
// is switched to raw mode for the duration of Run so that each key is
// seen as soon as it is pressed.
type KeyboardMode struct {
	Session   *session.Session
	GroupSize int
	Fd        int // terminal to put in raw mode; -1 reads Stdin as-is
	Metrics   *metrics.Collector
	Stats     bool
	Logger    *util.Logger

	streams
}

// Run reads keys until Ctrl-C, Ctrl-D, end of input or ctx is done.
// Ctrl-R returns the rotors to the start positions; Enter starts a new
// line of lamps.
func (m *KeyboardMode) Run(ctx context.Context) error {
	eol := "\n"
	if m.Fd >= 0 && term.IsTerminal(m.Fd) {
		old, err := term.MakeRaw(m.Fd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer term.Restore(m.Fd, old) //nolint:errcheck
		eol = "\r\n"
		m.Logger.Verbose("terminal in raw mode")
	}

	w := m.stdout()
	start := m.Session.Start()
	fmt.Fprintf(w, "Positions %s. Ctrl-R resets, Ctrl-C or Ctrl-D ends.%s", string(start[:]), eol)

	lamps := &util.GroupWriter{W: w, Size: m.GroupSize, EOL: eol}
	in := bufio.NewReader(m.stdin())

loop:
	for ctx.Err() == nil {
		r, _, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			m.Metrics.RecordError(err.Error())
			lamps.Close() //nolint:errcheck
			return fmt.Errorf("read key: %w", err)
		}

		switch r {
		case keyInterrupt, keyEOF:
			break loop
		case keyReset:
			m.Session.Reset()
			lamps.Close() //nolint:errcheck
			fmt.Fprintf(w, "[reset to %s]%s", string(start[:]), eol)
		case '\r', '\n':
			if err := lamps.Close(); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		default:
			lamp, ok := m.Session.Key(r)
			if !ok {
				continue
			}
			if _, err := lamps.Write([]byte{byte(lamp)}); err != nil {
				return fmt.Errorf("write: %w", err)
			}
			if m.Logger.Enabled(util.LogDebug) {
				p := m.Session.Positions()
				m.Logger.Debug("key %c lamp %c, positions %s", r, lamp, string(p[:]))
			}
		}
	}

	if err := lamps.Close(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	end := m.Session.Positions()
	m.Logger.Verbose("keyboard closed, positions now %s", string(end[:]))
	if m.Stats {
		reportStats(m.stderr(), m.Metrics)
	}
	return nil
}
