package jsonlines

import "os"

// OpenReader opens the named file and returns a Reader over it. The Reader
// owns the file: its Close releases it.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(f)
	r.inner = f
	return r, nil
}

// OpenWriter creates or truncates the named file and returns a Writer over
// it. The Writer owns the file: its Close flushes and releases it.
func OpenWriter(path string, opts ...WriterOption) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := NewWriter(f, opts...)
	w.inner = f
	return w, nil
}
