// Package machine is the cipher engine.  It owns three rotors, a
// reflector and a plugboard, drives the per-character signal path and
// advances the rotors with the historical stepping rule.
//
// A Machine is not safe for concurrent use: stepping and the signal
// path read and write rotor positions.  Use one Machine per stream, or
// wrap it in a session.Session.
package machine

import (
	"fmt"
	"strings"

	"goenigma/internal/alphabet"
	"goenigma/internal/errors"
	"goenigma/internal/plugboard"
	"goenigma/internal/reflector"
	"goenigma/internal/rotor"
	"goenigma/util"
)

// Rotor slots in stack order.
const (
	Left = iota
	Middle
	Right
)

var slotNames = [3]string{"left", "middle", "right"}

// Machine is the assembled engine.
type Machine struct {
	rotors    [3]*rotor.Rotor
	reflector *reflector.Reflector
	plugboard *plugboard.Plugboard
	logger    *util.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger attaches a logger.  Stepping and the signal trace are
// written at debug level, setter calls at verbose.
func WithLogger(l *util.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// New assembles a machine from already-built parts.  The machine takes
// ownership of them; callers must not keep mutating the rotors.  The
// reflector must be an involution, otherwise decoding would not undo
// encoding.
func New(rotors [3]*rotor.Rotor, refl *reflector.Reflector, pb *plugboard.Plugboard, opts ...Option) (*Machine, error) {
	for i, r := range rotors {
		if r == nil {
			return nil, fmt.Errorf("machine: %s rotor is nil", slotNames[i])
		}
	}
	if refl == nil {
		return nil, fmt.Errorf("machine: reflector is nil")
	}
	if !refl.IsInvolution() {
		return nil, errors.Component("reflector", "", refl.Name(), errors.ErrNotInvolution)
	}
	if pb == nil {
		pb = plugboard.New()
	}

	m := &Machine{rotors: rotors, reflector: refl, plugboard: pb}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// ── Signal path ──────────────────────────────────────────────────────

// EncodeRune runs one keystroke through the machine: plugboard, rotor
// step, rotors forward, reflector, rotors backward, plugboard.
// Lower-case letters are accepted.  Anything that is not a letter is
// returned unchanged and does not move the rotors.
func (m *Machine) EncodeRune(in rune) rune {
	if !alphabet.IsLetter(in) {
		return in
	}

	signal := m.plugboard.Process(in)
	m.Step()

	trace := m.logger.Enabled(util.LogDebug)
	var path []rune
	if trace {
		path = append(path, signal)
	}

	for _, r := range m.rotors {
		signal = r.Forward(signal)
		if trace {
			path = append(path, signal)
		}
	}
	signal = m.reflector.Reflect(signal)
	if trace {
		path = append(path, signal)
	}
	for i := len(m.rotors) - 1; i >= 0; i-- {
		signal = m.rotors[i].Backward(signal)
		if trace {
			path = append(path, signal)
		}
	}
	out := m.plugboard.Process(signal)

	if trace {
		m.logger.Debug("%c -> %s -> %c", in, string(path), out)
	}
	return out
}

// Encode normalizes text with alphabet.CleanText and enciphers every
// remaining letter in order.  The result is not grouped.
func (m *Machine) Encode(text string) string {
	clean := alphabet.CleanText(text)
	var b strings.Builder
	b.Grow(len(clean))
	for _, ch := range clean {
		b.WriteRune(m.EncodeRune(ch))
	}
	return b.String()
}

// Decode is the same operation as Encode.  The machine must be reset
// to the starting positions used for encoding first.
func (m *Machine) Decode(text string) string {
	return m.Encode(text)
}

// ── Stepping ─────────────────────────────────────────────────────────

// Step advances the rotors once.  The right rotor always moves.  The
// middle rotor moves when the right one was on its notch, or when the
// middle one is itself on its notch (the double step).  The left rotor
// moves when the middle one was on its notch.
func (m *Machine) Step() {
	left, middle, right := m.rotors[Left], m.rotors[Middle], m.rotors[Right]

	var middleNotched bool
	if right.Step() {
		middleNotched = middle.Step()
	} else if middle.AtNotch() {
		middleNotched = middle.Step()
	}
	if middleNotched {
		left.Step()
	}

	if m.logger.Enabled(util.LogDebug) {
		p := m.RotorPositions()
		m.logger.Debug("positions %c %c %c", p[Left], p[Middle], p[Right])
	}
}

// ── Accessors ────────────────────────────────────────────────────────

// RotorPositions returns the window letters, left to right.
func (m *Machine) RotorPositions() [3]rune {
	var out [3]rune
	for i, r := range m.rotors {
		out[i] = r.PositionLetter()
	}
	return out
}

// RingSettings returns the ring settings as letters, left to right.
func (m *Machine) RingSettings() [3]rune {
	var out [3]rune
	for i, r := range m.rotors {
		out[i] = r.RingSettingLetter()
	}
	return out
}

// SetRotorPositions sets all three positions.  A component that is not
// a letter leaves that rotor where it is.
func (m *Machine) SetRotorPositions(p [3]rune) {
	for i, ch := range p {
		if idx, ok := alphabet.LetterToIndex(ch); ok {
			m.rotors[i].SetPosition(idx)
		}
	}
	m.logger.Verbose("rotor positions set to %s", lettersString(m.RotorPositions()))
}

// SetRingSettings sets all three ring settings.  A component that is
// not a letter leaves that ring as it is.
func (m *Machine) SetRingSettings(r [3]rune) {
	for i, ch := range r {
		if idx, ok := alphabet.LetterToIndex(ch); ok {
			m.rotors[i].SetRingSetting(idx)
		}
	}
	m.logger.Verbose("ring settings set to %s", lettersString(m.RingSettings()))
}

// Settings returns the current configuration, with the plugboard in
// canonical form.  Build(m.Settings()) yields an identical machine.
func (m *Machine) Settings() Settings {
	var s Settings
	for i, r := range m.rotors {
		s.Rotors[i] = r.Name()
	}
	s.Positions = m.RotorPositions()
	s.Rings = m.RingSettings()
	s.Reflector = m.reflector.Name()
	s.Plugboard = m.plugboard.String()
	return s
}

// Summary is a human-readable dump of the configuration.
func (m *Machine) Summary() string {
	s := m.Settings()
	plugs := s.Plugboard
	if plugs == "" {
		plugs = "(none)"
	}
	return fmt.Sprintf("Rotors:        %s %s %s\n"+
		"Ring settings: %s\n"+
		"Positions:     %s\n"+
		"Reflector:     %s\n"+
		"Plugboard:     %s",
		s.Rotors[Left], s.Rotors[Middle], s.Rotors[Right],
		lettersString(s.Rings),
		lettersString(s.Positions),
		s.Reflector,
		plugs)
}

func lettersString(l [3]rune) string {
	return fmt.Sprintf("%c %c %c", l[0], l[1], l[2])
}
