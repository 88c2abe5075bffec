package contract

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Metadata is the carrier record attached to a contracted function. The
// descriptive slots are single-valued (last writer wins) and never affect
// control flow; the condition sequences accumulate in decoration order and
// are what the wrappers evaluate at call time.
//
// The carrier is owned by its Contract, so stacking condition and metadata
// decorators in any order always writes through to the same record.
type Metadata[A, R any] struct {
	// Specification is a free-text description of what the function does.
	Specification string
	// PreDescription describes the preconditions in prose.
	PreDescription string
	// PostDescription describes the postconditions in prose.
	PostDescription string
	// InvariantDescription describes the invariants in prose.
	InvariantDescription string

	// Raises is the declared set of error kinds the function may return.
	// Declared, not enforced.
	Raises []error

	// Preconditions, Postconditions, and Invariants hold the attached
	// condition predicates in the order they were applied.
	Preconditions  []Predicate[A]
	Postconditions []ResultPredicate[A, R]
	Invariants     []Predicate[A]
}

// clone returns a defensive copy so callers cannot mutate the live carrier.
func (m Metadata[A, R]) clone() Metadata[A, R] {
	m.Raises = slices.Clone(m.Raises)
	m.Preconditions = slices.Clone(m.Preconditions)
	m.Postconditions = slices.Clone(m.Postconditions)
	m.Invariants = slices.Clone(m.Invariants)
	return m
}

// Descriptor is the type-erased view of a contract's metadata used by
// documentation and rendering tooling, which cannot name the generic
// argument and result types.
type Descriptor struct {
	Name                 string
	Specification        string
	PreDescription       string
	PostDescription      string
	InvariantDescription string
	// Raises holds the declared error kinds as type names.
	Raises []string
	// Condition counts, in the same decoration-order sequences the
	// typed Metadata exposes.
	Preconditions  int
	Postconditions int
	Invariants     int
}

// kindName renders a declared error kind as its concrete type name.
func kindName(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}

// Entry is the registry's view of a contract: a name plus a describable
// metadata carrier.
type Entry interface {
	Name() string
	Describe() Descriptor
}

var registry = struct {
	mu     sync.RWMutex
	byName map[string]Entry
}{byName: make(map[string]Entry)}

// register records a contract for introspection. Re-registering a name
// replaces the previous entry. Registration happens at decoration time,
// which is effectively single-threaded package initialization, but the map
// is guarded anyway.
func register(e Entry) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.byName[e.Name()] = e
}

// Lookup returns the metadata descriptor registered under name.
func Lookup(name string) (Descriptor, bool) {
	registry.mu.RLock()
	e, ok := registry.byName[name]
	registry.mu.RUnlock()
	if !ok {
		return Descriptor{}, false
	}
	return e.Describe(), true
}

// Names returns the sorted names of all registered contracts.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.byName))
	for name := range registry.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
