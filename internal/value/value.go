// Package value holds the runtime payload of literal nodes.
//
// The front end treats Value as opaque: the literal sub-scanners construct
// one and later stages (evaluation, code generation) interpret it. Nothing
// in the lexer or parser inspects a Value beyond carrying it.
package value

import (
	"strconv"

	"github.com/proxima-lang/proxima/internal/interner"
)

// Kind discriminates the payload variants.
type Kind int

const (
	// KindNumber is a numeric literal payload.
	KindNumber Kind = iota
	// KindText is a textual (string or character) literal payload.
	KindText
	// KindIdentifier is an identifier appearing in expression position.
	KindIdentifier
)

// Value is an immutable literal payload.
type Value struct {
	kind       Kind
	number     float64
	text       interner.StringID
	identifier interner.IdentifierID
}

// Number returns a numeric payload.
func Number(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

// Text returns a textual payload holding interned string contents.
func Text(id interner.StringID) Value {
	return Value{kind: KindText, text: id}
}

// Identifier returns an identifier payload.
func Identifier(id interner.IdentifierID) Value {
	return Value{kind: KindIdentifier, identifier: id}
}

// Kind returns the payload variant.
func (v Value) Kind() Kind {
	return v.kind
}

// AsNumber returns the numeric payload; meaningful only for KindNumber.
func (v Value) AsNumber() float64 {
	return v.number
}

// AsText returns the string handle; meaningful only for KindText.
func (v Value) AsText() interner.StringID {
	return v.text
}

// AsIdentifier returns the identifier handle; meaningful only for
// KindIdentifier.
func (v Value) AsIdentifier() interner.IdentifierID {
	return v.identifier
}

// String returns a debug rendition of the payload.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	case KindText:
		text, _ := v.text.Resolve()
		return strconv.Quote(text)
	case KindIdentifier:
		name, _ := v.identifier.Resolve()
		return name
	default:
		return "invalid value"
	}
}
