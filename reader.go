package jsonlines

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/goccy/go-json"

	"github.com/signadot/jsonlines/textio"
)

// ReadOption configures a single Read, Decode or Iter call.
type ReadOption func(*readOpts)

type readOpts struct {
	tag         Tag
	hasTag      bool
	allowNull   bool
	skipInvalid bool
}

// WithTag requests that each decoded line conform to the given tag.
// Non-conforming lines fail with an *InvalidLineError.
func WithTag(t Tag) ReadOption {
	return func(o *readOpts) {
		o.tag = t
		o.hasTag = true
	}
}

// AllowNull makes lines containing a JSON null decode to nil instead of
// failing with an *InvalidLineError.
func AllowNull() ReadOption {
	return func(o *readOpts) {
		o.allowNull = true
	}
}

// SkipInvalid makes Iter silently skip lines that fail decoding or tag
// validation. Read and Decode ignore it.
func SkipInvalid() ReadOption {
	return func(o *readOpts) {
		o.skipInvalid = true
	}
}

func applyReadOpts(opts []ReadOption) (*readOpts, error) {
	o := &readOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.hasTag && !o.tag.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadTag, int(o.tag))
	}
	return o, nil
}

// A Reader reads a stream in the JSON Lines format.
type Reader struct {
	base
	text   *textio.Reader
	lineno int
}

// NewReader returns a Reader pulling lines from r. The Reader never closes
// r; use OpenReader to tie a file's lifetime to the Reader. A caller-owned
// *textio.Reader is used directly instead of being wrapped a second time.
func NewReader(r io.Reader) *Reader {
	res := &Reader{}
	if tr, ok := r.(*textio.Reader); ok {
		res.text = tr
	} else {
		res.text = textio.NewReader(r)
		res.adapter = res.text
	}
	return res
}

// Read decodes the next line. It returns io.EOF when no input remains and
// an *InvalidLineError when the line does not parse as JSON, contains null
// without AllowNull, or does not match a requested tag. Decoded values are
// map[string]any, []any, string, json.Number, bool, or nil.
func (r *Reader) Read(opts ...ReadOption) (any, error) {
	o, err := applyReadOpts(opts)
	if err != nil {
		return nil, err
	}
	return r.read(o)
}

func (r *Reader) read(o *readOpts) (any, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}

	var v any
	if err := decodeValue(line, &v); err != nil {
		return nil, invalidLine("invalid json: "+err.Error(), line, r.lineno, err)
	}
	if v == nil {
		if o.allowNull {
			return nil, nil
		}
		return nil, invalidLine("line contains null value", line, r.lineno, nil)
	}
	if o.hasTag && !o.tag.Matches(v) {
		return nil, invalidLine("line does not match requested type", line, r.lineno, nil)
	}
	return v, nil
}

// Decode reads the next line and unmarshals it into dst, the typed
// counterpart of Writer.Write for callers with a known record shape. Line
// counting and error reporting follow Read; tag and null handling are the
// JSON package's.
func (r *Reader) Decode(dst any) error {
	line, err := r.readLine()
	if err != nil {
		return err
	}
	if err := decodeValue(line, dst); err != nil {
		return invalidLine("invalid json: "+err.Error(), line, r.lineno, err)
	}
	return nil
}

// Iter returns a lazy, forward-only iterator applying Read with the same
// options to every remaining line. End of input ends iteration cleanly. An
// invalid line is skipped under SkipInvalid; any other failure is yielded
// once and iteration stops.
func (r *Reader) Iter(opts ...ReadOption) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		o, err := applyReadOpts(opts)
		if err != nil {
			yield(nil, err)
			return
		}
		for {
			v, err := r.read(o)
			switch {
			case err == nil:
				if !yield(v, nil) {
					return
				}
			case errors.Is(err, io.EOF):
				return
			default:
				var inv *InvalidLineError
				if o.skipInvalid && errors.As(err, &inv) {
					continue
				}
				yield(nil, err)
				return
			}
		}
	}
}

// Lineno returns the 1-based count of line-read attempts made so far,
// counting invalid lines.
func (r *Reader) Lineno() int {
	return r.lineno
}

// Close closes the Reader. The underlying stream is closed only when it was
// opened by OpenReader. Close is idempotent.
func (r *Reader) Close() error {
	return r.close()
}

// readLine pulls one line and counts the attempt. End of input surfaces as
// io.EOF without touching the counter.
func (r *Reader) readLine() (string, error) {
	if err := r.check(); err != nil {
		return "", err
	}
	line, err := r.text.ReadLine()
	if err != nil {
		return "", err
	}
	r.lineno++
	return line, nil
}

// decodeValue parses exactly one JSON value, rejecting trailing content on
// the line. Numbers decode as json.Number.
func decodeValue(line string, dst any) error {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		// A blank line decodes to io.EOF. That must not masquerade as
		// end of stream once wrapped in an InvalidLineError.
		if errors.Is(err, io.EOF) {
			return errors.New("empty line")
		}
		return err
	}
	// Decode stops after the first value; Valid rejects anything after it.
	if !json.Valid([]byte(line)) {
		return errors.New("trailing data after value")
	}
	return nil
}
