// Package jsonlines reads and writes the JSON Lines text format: a stream
// in which each line is one complete, independent JSON value terminated by
// a newline character.
//
// A Reader decodes one value per line and can validate each decoded value
// against a requested Tag. A Writer encodes one value per line. Both wrap a
// caller-supplied stream by reference and never close it; use OpenReader or
// OpenWriter to tie a file's lifetime to the Reader or Writer.
//
// # Example: Reading
//
//	r, err := jsonlines.OpenReader("events.jsonl")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	for v, err := range r.Iter() {
//	    if err != nil {
//	        return err
//	    }
//	    process(v)
//	}
//
// # Example: Writing
//
//	w, err := jsonlines.OpenWriter("events.jsonl", jsonlines.WithFlush())
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Write(map[string]any{"kind": "started"}); err != nil {
//	    return err
//	}
//
// # Decoded values
//
// Read produces generic values: map[string]any for objects, []any for
// arrays, string, json.Number, bool, and nil for a JSON null (only when
// reading with AllowNull). Numbers decode as json.Number so the distinction
// between integer and floating-point literals survives decoding.
//
// # Invalid lines
//
// A line that fails to parse, decodes to null without AllowNull, or does
// not match the requested Tag produces an *InvalidLineError carrying the
// offending line and its 1-based line number. Iter propagates these unless
// SkipInvalid is given.
package jsonlines
