package interner

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternIdentifierRoundTrip(t *testing.T) {
	id := InternIdentifier("counter")

	text, ok := id.Resolve()
	if !ok {
		t.Fatalf("Resolve() reported unknown handle for freshly interned identifier")
	}
	if text != "counter" {
		t.Errorf("Resolve() = %q, want %q", text, "counter")
	}
}

func TestInternIdentifierDeterministic(t *testing.T) {
	first := InternIdentifier("same_text")
	second := InternIdentifier("same_text")
	other := InternIdentifier("other_text")

	if first != second {
		t.Errorf("interning identical text twice gave %d and %d", first, second)
	}
	if first == other {
		t.Errorf("interning distinct texts gave the same handle %d", first)
	}
}

func TestNamespacesAreIndependent(t *testing.T) {
	// The same text interned in different namespaces must not collide:
	// handles are only comparable within a namespace.
	identifier := InternIdentifier("shared")
	literal := InternString("shared")
	path := InternPath("shared")

	if text, ok := identifier.Resolve(); !ok || text != "shared" {
		t.Errorf("identifier namespace: Resolve() = %q, %v", text, ok)
	}
	if text, ok := literal.Resolve(); !ok || text != "shared" {
		t.Errorf("string namespace: Resolve() = %q, %v", text, ok)
	}
	if text, ok := path.Resolve(); !ok || text != "shared" {
		t.Errorf("path namespace: Resolve() = %q, %v", text, ok)
	}
}

func TestDummyHandlesDoNotResolve(t *testing.T) {
	if _, ok := DummyIdentifierID.Resolve(); ok {
		t.Errorf("DummyIdentifierID resolved to real text")
	}
	if _, ok := DummyStringID.Resolve(); ok {
		t.Errorf("DummyStringID resolved to real text")
	}
	if _, ok := DummyPathID.Resolve(); ok {
		t.Errorf("DummyPathID resolved to real text")
	}
}

func TestForeignHandlesDoNotResolve(t *testing.T) {
	// Handles near the top of the uint32 range must fail the bounds check
	// on every platform, not index the table with a wrapped value.
	for _, id := range []IdentifierID{DummyIdentifierID, dummySymbol - 1, ^IdentifierID(0)} {
		if text, ok := id.Resolve(); ok {
			t.Errorf("handle %d resolved to %q, want no resolution", id, text)
		}
	}
}

func TestConcurrentInterning(t *testing.T) {
	const goroutines = 8
	const texts = 100

	var wg sync.WaitGroup
	results := make([][]StringID, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids := make([]StringID, texts)
			for i := 0; i < texts; i++ {
				ids[i] = InternString(fmt.Sprintf("concurrent-%d", i))
			}
			results[g] = ids
		}(g)
	}
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		for i := 0; i < texts; i++ {
			if results[g][i] != results[0][i] {
				t.Fatalf("goroutine %d interned %q as %d, goroutine 0 as %d",
					g, fmt.Sprintf("concurrent-%d", i), results[g][i], results[0][i])
			}
		}
	}
}
