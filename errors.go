package jsonlines

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrBadTag reports a type tag outside the recognized set. It is
	// returned before any line is read from the stream.
	ErrBadTag = errors.New("bad type tag")

	// ErrClosed reports a line operation on a closed Reader or Writer.
	ErrClosed = errors.New("reader/writer is closed")
)

// InvalidLineError reports a line that does not contain valid JSON, decodes
// to null without AllowNull, or does not match the requested Tag.
type InvalidLineError struct {
	Msg    string
	Line   string // the offending line, trailing whitespace stripped
	Lineno int    // 1-based count of line-read attempts
	Err    error  // underlying decode error, if any
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Msg, e.Lineno)
}

func (e *InvalidLineError) Unwrap() error {
	return e.Err
}

func invalidLine(msg, line string, lineno int, err error) *InvalidLineError {
	return &InvalidLineError{
		Msg:    msg,
		Line:   strings.TrimRightFunc(line, unicode.IsSpace),
		Lineno: lineno,
		Err:    err,
	}
}
