// Package errors provides domain-specific error types for goenigma.
//
// Every failure the cipher engine can report happens while a component
// is being constructed.  The sentinels below name the error kinds so
// callers can branch with Is; the structured types carry the slot or
// flag that was wrong.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrMalformedPermutation = errors.New("malformed permutation")
	ErrInvalidLetter        = errors.New("invalid letter")
	ErrInvalidSelector      = errors.New("unknown selector")
	ErrPlugboardConflict    = errors.New("plugboard conflict")
	ErrMalformedToken       = errors.New("malformed plugboard token")
	ErrNotPaired            = errors.New("letter is not paired")
	ErrNotInvolution        = errors.New("reflector is not an involution")
)

// ── Structured error types ───────────────────────────────────────────

// ComponentError reports a machine part that could not be assembled.
type ComponentError struct {
	Part     string // "rotor", "reflector", "plugboard"
	Slot     string // "left", "middle", "right" (empty for single parts)
	Selector string // the catalog name or raw input that was rejected
	Err      error  // underlying error, usually wrapping a sentinel
}

func (e *ComponentError) Error() string {
	s := e.Part
	if e.Slot != "" {
		s += " " + e.Slot
	}
	if e.Selector != "" {
		s += fmt.Sprintf(" %q", e.Selector)
	}
	return fmt.Sprintf("%s: %v", s, e.Err)
}

func (e *ComponentError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // underlying error (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	switch {
	case e.Message != "" && e.Err != nil:
		msg += ": " + e.Message + ": " + e.Err.Error()
	case e.Message != "":
		msg += ": " + e.Message
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// Component creates a ComponentError for the given part and slot.
func Component(part, slot, selector string, err error) *ComponentError {
	return &ComponentError{Part: part, Slot: slot, Selector: selector, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsConstruction reports whether err is one of the construction-time
// kinds raised by the cipher components.
func IsConstruction(err error) bool {
	if err == nil {
		return false
	}
	for _, kind := range []error{
		ErrMalformedPermutation, ErrInvalidLetter, ErrInvalidSelector,
		ErrPlugboardConflict, ErrMalformedToken, ErrNotPaired, ErrNotInvolution,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use goenigma/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
