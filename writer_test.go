package jsonlines

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jsonlines/textio"
)

func TestWriteAll(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteAll(1, "a", map[string]any{"k": "v"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "1\n\"a\"\n{\"k\":\"v\"}\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestWriteUnicodeVerbatim(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write("héllo ☃ <&>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "\"héllo ☃ <&>\"\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestWriteFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WithFlush())
	if err := w.Write(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// observable without Close
	if buf.String() != "1\n" {
		t.Errorf("expected flushed line, got %q", buf.String())
	}
}

func TestWriteBuffersWithoutFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected buffered line, got %q", buf.String())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "1\n" {
		t.Errorf("expected %q, got %q", "1\n", buf.String())
	}
}

func TestWriteEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(make(chan int)); err == nil {
		t.Fatal("expected error for unencodable value")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output after failed write, got %q", buf.String())
	}
}

func TestWriteAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close: unexpected error: %v", err)
	}
}

func TestWriterKeepsCallerTextView(t *testing.T) {
	var buf bytes.Buffer
	tw := textio.NewWriter(&buf)
	w := NewWriter(tw)
	if err := w.Write(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the caller-supplied view stays open and flushable
	if err := tw.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "1\n" {
		t.Errorf("expected %q, got %q", "1\n", buf.String())
	}
}

func TestRoundTrip(t *testing.T) {
	values := []any{
		map[string]any{"a": []any{json.Number("1"), "x"}, "b": true},
		"s",
		true,
		json.Number("3.14"),
		json.Number("42"),
		[]any{},
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteAll(values...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewReader(&buf)
	var got []any
	for v, err := range r.Iter() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, v)
	}
	if diff := cmp.Diff(values, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
