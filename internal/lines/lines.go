// Package lines resolves arbitrary byte offsets in a newline-delimited buffer
// to whole lines. Only '\n' terminates a line.
package lines

import (
	"bytes"
	"errors"
)

// ErrNoNewlines is returned when a buffer has fewer than two terminated lines,
// so no sampling domain can be established.
var ErrNoNewlines = errors.New("file has no newlines")

// Span is the [Begin, End) byte range of one line, terminator included.
type Span struct {
	Begin int
	End   int
}

// Len returns the number of bytes in the line, terminator included.
func (s Span) Len() int {
	return s.End - s.Begin
}

// nextNewline returns the index of the first '\n' at or after from, or -1.
func nextNewline(data []byte, from int) int {
	i := bytes.IndexByte(data[from:], '\n')
	if i < 0 {
		return -1
	}
	return from + i
}

// Locate returns the first complete line starting at or after offset.
//
// A probe that lands inside a line snaps forward to the following line, never
// back to the start of the one it hit. Offset 0 and any offset directly after
// a '\n' are line starts already. ok is false when no terminated line begins
// at or after offset.
func Locate(data []byte, offset int) (span Span, ok bool) {
	if offset < 0 || offset > len(data) {
		return Span{}, false
	}

	begin := offset
	if offset > 0 && data[offset-1] != '\n' {
		p := nextNewline(data, offset)
		if p < 0 {
			return Span{}, false
		}
		begin = p + 1
	}

	q := nextNewline(data, begin)
	if q < 0 {
		return Span{}, false
	}
	end := q + 1
	if end > len(data) {
		return Span{}, false
	}
	return Span{Begin: begin, End: end}, true
}

// LastOffset returns the largest probe offset for which Locate is guaranteed
// to find a fully terminated line: the start of the last terminated line.
// Every offset in [0, LastOffset] resolves.
//
// Buffers with fewer than two '\n' are rejected with ErrNoNewlines.
func LastOffset(data []byte) (int, error) {
	endPos := bytes.LastIndexByte(data, '\n')
	if endPos < 0 {
		return 0, ErrNoNewlines
	}
	prev := bytes.LastIndexByte(data[:endPos], '\n')
	if prev < 0 {
		return 0, ErrNoNewlines
	}
	return prev + 1, nil
}
