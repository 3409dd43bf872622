package textio

import (
	"bufio"
	"io"
	"io/fs"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// A Reader is a buffered UTF-8 text view over a byte stream. Invalid UTF-8
// sequences in the input are replaced with U+FFFD by the decoding
// transform; a leading byte order mark is not stripped.
type Reader struct {
	buf    *bufio.Reader
	closed bool
}

// NewReader returns a text view over r. The view never closes r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf: bufio.NewReader(transform.NewReader(r, unicode.UTF8.NewDecoder())),
	}
}

// Read implements io.Reader over the decoded text.
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, fs.ErrClosed
	}
	return r.buf.Read(p)
}

// ReadLine returns the next line including its terminating newline, or the
// final line when the input ends without one. It returns io.EOF only when
// no input remains.
func (r *Reader) ReadLine() (string, error) {
	if r.closed {
		return "", fs.ErrClosed
	}
	line, err := r.buf.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// Close detaches the view from the wrapped stream without closing it.
// Close is idempotent.
func (r *Reader) Close() error {
	r.closed = true
	return nil
}
