package textio

import (
	"bufio"
	"io"
	"io/fs"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// A Writer is a buffered UTF-8 text sink over a byte stream. Close flushes
// buffered text and detaches; the wrapped stream stays open.
type Writer struct {
	buf    *bufio.Writer
	enc    *transform.Writer
	closed bool
}

// NewWriter returns a text sink over w. The sink never closes w.
func NewWriter(w io.Writer) *Writer {
	enc := transform.NewWriter(w, unicode.UTF8.NewEncoder())
	return &Writer{
		buf: bufio.NewWriter(enc),
		enc: enc,
	}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	return w.buf.Write(p)
}

func (w *Writer) WriteString(s string) error {
	if w.closed {
		return fs.ErrClosed
	}
	_, err := w.buf.WriteString(s)
	return err
}

// Flush pushes buffered text through to the wrapped stream. Callers write
// whole runes, so the encoding transform retains nothing after a flush.
func (w *Writer) Flush() error {
	if w.closed {
		return fs.ErrClosed
	}
	return w.buf.Flush()
}

// Close flushes and detaches. The first call reports flush errors; later
// calls are no-ops.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.buf.Flush(); err != nil {
		return err
	}
	// transform.Writer.Close flushes transform state but leaves the
	// wrapped stream open.
	return w.enc.Close()
}
