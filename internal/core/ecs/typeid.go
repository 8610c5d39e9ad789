package ecs

import (
	"fmt"
	"reflect"
)

// TypeID is the dense identity of a component kind. IDs start at zero, are
// assigned lazily on first use, and stay stable for the process lifetime.
// Treat the value as opaque; it is only meaningful as an index.
type TypeID uint8

// MaxComponentTypes bounds how many distinct component kinds a process may
// register. Entity keeps a fixed table and bitmask of this width, so raising
// the bound is a compile-time decision.
const MaxComponentTypes = 32

type typeRegistry struct {
	ids  map[reflect.Type]TypeID
	next TypeID
}

var types = typeRegistry{ids: make(map[reflect.Type]TypeID, MaxComponentTypes)}

// idFor assigns on first use. Single-threaded contract, no locking.
func (r *typeRegistry) idFor(t reflect.Type) (TypeID, error) {
	if id, ok := r.ids[t]; ok {
		return id, nil
	}
	if int(r.next) >= MaxComponentTypes {
		return 0, fmt.Errorf("register %s: %w (capacity %d)", t, ErrTooManyComponentTypes, MaxComponentTypes)
	}
	id := r.next
	r.next++
	r.ids[t] = id
	return id, nil
}

// lookup never assigns, so presence checks stay free of side effects.
func (r *typeRegistry) lookup(t reflect.Type) (TypeID, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// TypeIDFor returns the identity of component kind T, assigning one on first
// call. Two calls for the same kind always return the same value; distinct
// kinds never collide. Fails with ErrTooManyComponentTypes once
// MaxComponentTypes kinds exist.
func TypeIDFor[T Component]() (TypeID, error) {
	return types.idFor(reflect.TypeOf((*T)(nil)).Elem())
}

// ResetTypeRegistry discards every assigned identity. Only for tests that
// exercise the capacity bound; entities from before the reset must not be
// used afterwards.
func ResetTypeRegistry() {
	types = typeRegistry{ids: make(map[reflect.Type]TypeID, MaxComponentTypes)}
}
