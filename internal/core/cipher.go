package core

import (
	"context"
	"fmt"

	"goenigma/internal/alphabet"
	"goenigma/internal/metrics"
	"goenigma/internal/session"
	"goenigma/util"
)

// CipherMode enciphers or deciphers one message, taken from Text or,
// when Text is empty, streamed from stdin.  The machine state carries
// across the whole input, so a message split over several lines
// deciphers the same as the joined message.
type CipherMode struct {
	Session   *session.Session
	Text      string
	Decrypt   bool // wording only; the operation is identical
	GroupSize int
	Metrics   *metrics.Collector
	Stats     bool
	Logger    *util.Logger

	streams
}

// Run writes the grouped result followed by a newline.  Input with no
// letters produces no output.
func (m *CipherMode) Run(ctx context.Context) error {
	op, process := "encrypting", m.Session.Encode
	if m.Decrypt {
		op, process = "decrypting", m.Session.Decode
	}
	start := m.Session.Start()
	m.Logger.Verbose("%s from positions %s", op, string(start[:]))

	letters := 0
	cipher := func(text string) string {
		res := process(text)
		letters += len(res)
		return res
	}

	if m.Text != "" {
		if res := cipher(m.Text); res != "" {
			if _, err := fmt.Fprintln(m.stdout(), alphabet.Group(res, m.GroupSize)); err != nil {
				m.Metrics.RecordError(err.Error())
				return fmt.Errorf("write: %w", err)
			}
		}
	} else {
		out := &util.GroupWriter{W: m.stdout(), Size: m.GroupSize}
		_, err := util.TransformCopy(ctx, m.stdin(), out, func(chunk []byte) []byte {
			return []byte(cipher(string(chunk)))
		})
		if err != nil {
			m.Metrics.RecordError(err.Error())
			return fmt.Errorf("%s stdin: %w", op, err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}

	if letters == 0 {
		m.Logger.Warn("no letters in input, nothing to do")
	}

	end := m.Session.Positions()
	m.Logger.Verbose("done, positions now %s", string(end[:]))
	if m.Stats {
		reportStats(m.stderr(), m.Metrics)
	}
	return nil
}
