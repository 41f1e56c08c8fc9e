// Package interner deduplicates strings into small stable handles.
//
// Three independent namespaces exist: identifiers, string-literal contents,
// and file paths. Handles from the same namespace compare equal iff the
// underlying strings are equal; handles from different namespaces must never
// be compared. Tables are process-wide, created lazily, and grow-only.
package interner

import (
	"math"
	"sync"
)

// dummySymbol is the reserved out-of-band handle value shared by the dummy
// constants below. It is never allocated by interning and never resolves.
const dummySymbol = math.MaxUint32 - 1

// IdentifierID is a handle into the identifier namespace.
type IdentifierID uint32

// StringID is a handle into the string-literal namespace.
type StringID uint32

// PathID is a handle into the file-path namespace.
type PathID uint32

// Dummy handles are placeholders used before real interning occurs, e.g.
// while constructing a scanner. They never resolve to a string.
const (
	DummyIdentifierID IdentifierID = dummySymbol
	DummyStringID     StringID     = dummySymbol
	DummyPathID       PathID       = dummySymbol
)

// table is one namespace's intern storage. lookup maps text to its index in
// strings; reverse lookup is direct indexing.
type table struct {
	mu      sync.Mutex
	lookup  map[string]uint32
	strings []string
}

var (
	identifiers table
	literals    table
	paths       table
)

func (t *table) intern(text string) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lookup == nil {
		t.lookup = make(map[string]uint32)
	}
	if id, ok := t.lookup[text]; ok {
		return id
	}

	id := uint32(len(t.strings))
	if id >= dummySymbol {
		panic("interner: namespace exhausted")
	}
	t.lookup[text] = id
	t.strings = append(t.strings, text)
	return id
}

func (t *table) resolve(id uint32) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id >= uint32(len(t.strings)) {
		return "", false
	}
	return t.strings[id], true
}

// InternIdentifier returns the handle for text in the identifier namespace,
// allocating one if text has not been seen before.
func InternIdentifier(text string) IdentifierID {
	return IdentifierID(identifiers.intern(text))
}

// InternString returns the handle for text in the string-literal namespace.
func InternString(text string) StringID {
	return StringID(literals.intern(text))
}

// InternPath returns the handle for path in the file-path namespace.
func InternPath(path string) PathID {
	return PathID(paths.intern(path))
}

// Resolve returns the identifier text for id, or false if id was never
// produced by InternIdentifier (including the dummy handle).
func (id IdentifierID) Resolve() (string, bool) {
	return identifiers.resolve(uint32(id))
}

// Resolve returns the string-literal text for id, or false for foreign or
// dummy handles.
func (id StringID) Resolve() (string, bool) {
	return literals.resolve(uint32(id))
}

// Resolve returns the path text for id, or false for foreign or dummy handles.
func (id PathID) Resolve() (string, bool) {
	return paths.resolve(uint32(id))
}
