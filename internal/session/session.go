// Package session binds a cipher machine to the start positions of a
// message and serializes access to it.
//
// A machine's rotor positions change on every letter, so a session
// holds one lock across a whole Encode, Decode or Key call.  Callers
// that share a session between goroutines therefore observe each call
// as one atomic unit.
package session

import (
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"goenigma/internal/alphabet"
	"goenigma/internal/machine"
	"goenigma/internal/metrics"
	"goenigma/util"
)

// Session wraps a Machine together with the positions it started from.
type Session struct {
	ID string

	mu      sync.Mutex
	machine *machine.Machine
	start   [3]rune

	logger  *util.Logger
	metrics *metrics.Collector
}

// New takes ownership of m and records its current rotor positions as
// the message start.  logger and collector may be nil.
func New(m *machine.Machine, logger *util.Logger, collector *metrics.Collector) *Session {
	id := uuid.NewString()
	collector.SetSessionID(id)
	return &Session{
		ID:      id,
		machine: m,
		start:   m.RotorPositions(),
		logger:  logger.With("session " + id[:8]),
		metrics: collector,
	}
}

// Encode enciphers text, continuing from the current rotor positions.
func (s *Session) Encode(text string) string {
	return s.process("encode", text)
}

// Decode deciphers text, continuing from the current rotor positions.
// It is the same operation as Encode.
func (s *Session) Decode(text string) string {
	return s.process("decode", text)
}

func (s *Session) process(op, text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.machine.Encode(text)
	dropped := utf8.RuneCountInString(text) - len(out)
	s.metrics.MessageProcessed(len(out), dropped)

	if s.logger.Enabled(util.LogVerbose) {
		p := s.machine.RotorPositions()
		s.logger.Verbose("%s: %d letters (%d dropped), positions now %s",
			op, len(out), dropped, string(p[:]))
	}
	return out
}

// Key enciphers a single keystroke.  The second result is false, and
// the rotors do not move, when r is not a letter.
func (s *Session) Key(r rune) (rune, bool) {
	if !alphabet.IsLetter(r) {
		return r, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.machine.EncodeRune(r)
	s.metrics.Keystroke()
	return out, true
}

// Reset returns the rotors to the message start positions.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.SetRotorPositions(s.start)
	s.metrics.Reset()
	s.logger.Verbose("reset to %s", string(s.start[:]))
}

// SetStart changes the message start positions and resets to them.
// Components that are not letters keep their previous start value.
func (s *Session) SetStart(p [3]rune) {
	s.mu.Lock()
	s.machine.SetRotorPositions(p)
	s.start = s.machine.RotorPositions()
	s.mu.Unlock()
	s.metrics.Reset()
}

// Start returns the message start positions.
func (s *Session) Start() [3]rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start
}

// Positions returns the current rotor positions.
func (s *Session) Positions() [3]rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.RotorPositions()
}

// Settings returns the machine configuration at the start positions.
func (s *Session) Settings() machine.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.machine.Settings()
	st.Positions = s.start
	return st
}

// Summary returns the machine's human-readable configuration.
func (s *Session) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Summary()
}
