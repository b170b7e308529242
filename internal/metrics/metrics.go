// Package metrics provides lightweight, lock-free counters for the
// statistics of a cipher session.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for one session.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	messagesTotal atomic.Int64
	lettersTotal  atomic.Int64
	droppedTotal  atomic.Int64
	keystrokes    atomic.Int64
	resetsTotal   atomic.Int64
	errorsTotal   atomic.Int64

	mu           sync.RWMutex
	sessionID    string
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// SetSessionID tags the snapshot with the owning session's ID.
func (c *Collector) SetSessionID(id string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.sessionID = id
	c.mu.Unlock()
}

// ── Cipher metrics ───────────────────────────────────────────────────

// MessageProcessed records one Encode/Decode call that ciphered
// letters and dropped the given number of non-letter characters
// during normalization.
func (c *Collector) MessageProcessed(letters, dropped int) {
	if c == nil {
		return
	}
	c.messagesTotal.Add(1)
	c.lettersTotal.Add(int64(letters))
	c.droppedTotal.Add(int64(dropped))
}

// Keystroke records a single interactively ciphered letter.
func (c *Collector) Keystroke() {
	if c == nil {
		return
	}
	c.keystrokes.Add(1)
	c.lettersTotal.Add(1)
}

// Reset records the machine being returned to its start positions.
func (c *Collector) Reset() {
	if c == nil {
		return
	}
	c.resetsTotal.Add(1)
}

// Messages returns the number of messages processed.
func (c *Collector) Messages() int64 {
	if c == nil {
		return 0
	}
	return c.messagesTotal.Load()
}

// Letters returns the number of letters ciphered, keystrokes included.
func (c *Collector) Letters() int64 {
	if c == nil {
		return 0
	}
	return c.lettersTotal.Load()
}

// Dropped returns the number of characters removed by normalization.
func (c *Collector) Dropped() int64 {
	if c == nil {
		return 0
	}
	return c.droppedTotal.Load()
}

// Resets returns how often the machine was reset.
func (c *Collector) Resets() int64 {
	if c == nil {
		return 0
	}
	return c.resetsTotal.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	SessionID        string `json:"session_id,omitempty"`
	Uptime           string `json:"uptime"`
	Messages         int64  `json:"messages"`
	Letters          int64  `json:"letters"`
	Dropped          int64  `json:"dropped"`
	Keystrokes       int64  `json:"keystrokes"`
	Resets           int64  `json:"resets"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		SessionID:   c.sessionID,
		Uptime:      time.Since(c.startTime).Truncate(time.Millisecond).String(),
		Messages:    c.messagesTotal.Load(),
		Letters:     c.lettersTotal.Load(),
		Dropped:     c.droppedTotal.Load(),
		Keystrokes:  c.keystrokes.Load(),
		Resets:      c.resetsTotal.Load(),
		ErrorsTotal: c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
