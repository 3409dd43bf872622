package jsonlines

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/signadot/jsonlines/textio"
)

// WriterOption configures a Writer at construction.
type WriterOption func(*Writer)

// WithFlush makes the Writer flush the underlying stream after every
// write, so each line is observable immediately.
func WithFlush() WriterOption {
	return func(w *Writer) {
		w.flush = true
	}
}

// A Writer writes values as lines in the JSON Lines format.
type Writer struct {
	base
	text  *textio.Writer
	enc   *json.Encoder
	flush bool
}

// NewWriter returns a Writer appending lines to w. The Writer never closes
// w; use OpenWriter to tie a file's lifetime to the Writer. A caller-owned
// *textio.Writer is used directly instead of being wrapped a second time.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	res := &Writer{}
	if tw, ok := w.(*textio.Writer); ok {
		res.text = tw
	} else {
		res.text = textio.NewWriter(w)
		res.adapter = res.text
	}
	res.enc = json.NewEncoder(res.text)
	res.enc.SetEscapeHTML(false)
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Write encodes v as a single JSON line followed by exactly one newline.
// Non-ASCII text is emitted verbatim, not escaped. A value the encoder
// cannot represent fails without emitting a line.
func (w *Writer) Write(v any) error {
	if err := w.check(); err != nil {
		return err
	}
	if err := w.enc.Encode(v); err != nil {
		return err
	}
	if w.flush {
		return w.text.Flush()
	}
	return nil
}

// WriteAll encodes each value in order. The first failure aborts the
// remaining writes.
func (w *Writer) WriteAll(values ...any) error {
	for _, v := range values {
		if err := w.Write(v); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered lines and closes the Writer. The underlying
// stream is closed only when it was opened by OpenWriter. Close is
// idempotent.
func (w *Writer) Close() error {
	return w.close()
}
