package jsonlines

import "io"

// base carries the lifecycle shared by Reader and Writer: the closed flag,
// the owned text view over the caller's stream, and the underlying resource
// when it was opened by this package. Ownership is set at construction and
// never inferred later.
type base struct {
	closed  bool
	adapter io.Closer // owned text view, nil when the caller supplied one
	inner   io.Closer // set only by OpenReader and OpenWriter
}

func (b *base) check() error {
	if b.closed {
		return ErrClosed
	}
	return nil
}

// close runs the shutdown sequence exactly once: the text view first (flush
// and detach), then the underlying resource when owned. Later calls are
// no-ops. The first error wins; remaining steps still run.
func (b *base) close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	var err error
	if b.adapter != nil {
		err = b.adapter.Close()
	}
	if b.inner != nil {
		if cerr := b.inner.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
