// Package textio presents byte streams as buffered UTF-8 text views that
// can be closed without closing the stream they wrap.
//
// A Reader decodes incoming bytes as UTF-8 and serves them line by line.
// A Writer buffers outgoing text and encodes it as UTF-8. Closing either
// one flushes (for a Writer) and detaches; the wrapped stream stays open
// and remains the caller's to close.
//
// Reader and Writer are recognized by jsonlines.NewReader and
// jsonlines.NewWriter, which use a caller-supplied view directly instead of
// wrapping it a second time.
package textio
