// Package lexer provides lexical analysis for the compiler front end.
// It transforms source text into a stream of tokens consumed by the parser.
package lexer

import (
	"strconv"
	"unicode/utf8"
)

// CharLocation is the position of a scanning cursor in the source.
//
// Line is 1-based. Column counts codepoints on the current line and resets
// to 0 after a line feed. Offset is the 0-based byte offset into the source,
// so it can index byte slices of the original text directly; the asymmetry
// between Column (codepoints) and Offset (bytes) is intentional.
type CharLocation struct {
	Line   int
	Column int
	Offset int
}

// NewCharLocation returns the location with the given coordinates.
func NewCharLocation(line, column, offset int) CharLocation {
	return CharLocation{Line: line, Column: column, Offset: offset}
}

// Advanced returns the location after consuming r at this position.
// The byte offset grows by r's UTF-8 encoded length; a line feed resets the
// column and increments the line, any other codepoint increments the column.
func (l CharLocation) Advanced(r rune) CharLocation {
	next := CharLocation{
		Line:   l.Line,
		Column: l.Column + 1,
		Offset: l.Offset + utf8.RuneLen(r),
	}
	if r == '\n' {
		next.Line = l.Line + 1
		next.Column = 0
	}
	return next
}

// String returns the location as "line:column".
func (l CharLocation) String() string {
	return strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// Before reports whether l comes before other. Offset is the source of
// truth; line and column are derived from it.
func (l CharLocation) Before(other CharLocation) bool {
	return l.Offset < other.Offset
}

// Location is a half-open source span: End is the position immediately after
// the span's last byte.
type Location struct {
	Start CharLocation
	End   CharLocation
}

// NewLocation returns the span from start to end.
func NewLocation(start, end CharLocation) Location {
	return Location{Start: start, End: end}
}

// LocationOfFirstByte returns the empty span at the very start of a file.
func LocationOfFirstByte() Location {
	first := NewCharLocation(1, 0, 0)
	return Location{Start: first, End: first}
}

// String returns the span as "start-end".
func (l Location) String() string {
	return l.Start.String() + "-" + l.End.String()
}

// Length returns the number of bytes the span covers.
func (l Location) Length() int {
	return l.End.Offset - l.Start.Offset
}

// Contains reports whether other lies fully within l.
func (l Location) Contains(other Location) bool {
	return !other.Start.Before(l.Start) && !l.End.Before(other.End)
}
