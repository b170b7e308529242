package util

import (
	"context"
	"errors"
	"io"
	"os"
)

// DefaultBufSize is the chunk size used when streaming message text.
const DefaultBufSize = 4 * 1024

// TransformCopy reads r in chunks, passes each chunk through fn and
// writes the result to w until r reaches EOF or ctx is cancelled.  fn
// may return an empty slice to drop a chunk entirely.  It returns the
// number of bytes read from r.
func TransformCopy(ctx context.Context, r io.Reader, w io.Writer, fn func([]byte) []byte) (int64, error) {
	buf := GetBuf()
	defer PutBuf(buf)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := r.Read(*buf)
		if n > 0 {
			total += int64(n)
			if out := fn((*buf)[:n]); len(out) > 0 {
				if _, werr := w.Write(out); werr != nil {
					return total, werr
				}
			}
		}
		if err != nil {
			if isHarmless(err) {
				return total, nil
			}
			return total, err
		}
	}
}

// GroupWriter breaks a letter stream into space-separated blocks of
// Size characters.  Block boundaries carry across Write calls.
// A Size of zero or less passes bytes through unchanged.
type GroupWriter struct {
	W    io.Writer
	Size int
	EOL  string // line terminator written by Close, default "\n"

	col     int
	written bool
}

// Write implements io.Writer.
func (g *GroupWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if g.Size <= 0 {
		g.written = true
		return g.W.Write(p)
	}
	out := make([]byte, 0, len(p)+len(p)/g.Size+1)
	for _, b := range p {
		if g.col == g.Size {
			out = append(out, ' ')
			g.col = 0
		}
		out = append(out, b)
		g.col++
	}
	if _, err := g.W.Write(out); err != nil {
		return 0, err
	}
	g.written = true
	return len(p), nil
}

// Close terminates the current line if anything was written and
// starts a fresh block count.  It does not close the underlying
// writer, so a GroupWriter may be reused for the next line.
func (g *GroupWriter) Close() error {
	if !g.written {
		return nil
	}
	g.written = false
	g.col = 0
	eol := g.EOL
	if eol == "" {
		eol = "\n"
	}
	_, err := io.WriteString(g.W, eol)
	return err
}

// isHarmless returns true for errors that simply mean the input ended.
func isHarmless(err error) bool {
	if err == nil {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed)
}
