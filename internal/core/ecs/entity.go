package ecs

import (
	"fmt"
	"reflect"
	"time"
)

// Entity owns an insertion-ordered collection of components plus two
// non-owning views into it for O(1) typed access: a fixed table and a
// presence bitmask, both indexed by TypeID. Entities are created by a
// Manager and live until its Refresh pass sweeps them.
type Entity struct {
	id         uint64
	components []Component
	byType     [MaxComponentTypes]Component
	mask       uint32 // bit i mirrors byType[i]; width matches MaxComponentTypes
	active     bool
}

// ID is a diagnostic identity for logs and events, unique per manager,
// starting at 1. It carries no generation: entities are owned pointers, not
// pooled handles, so there are no stale handles to detect.
func (e *Entity) ID() uint64 { return e.id }

// Attach takes ownership of c: wires its back-reference, appends it to the
// component collection, records it in the typed table and bitmask, then runs
// Init if c implements Initializer. On error nothing is attached.
//
// Fails with ErrTooManyComponentTypes when c's kind cannot be registered and
// with ErrComponentAlreadyAttached when the entity already holds that kind.
func (e *Entity) Attach(c Component) error {
	t := reflect.TypeOf(c)
	id, err := types.idFor(t)
	if err != nil {
		return err
	}
	if e.mask&(1<<id) != 0 {
		return fmt.Errorf("attach %s: %w", t, ErrComponentAlreadyAttached)
	}
	c.setOwner(e)
	e.components = append(e.components, c)
	e.byType[id] = c
	e.mask |= 1 << id
	if in, ok := c.(Initializer); ok {
		in.Init()
	}
	return nil
}

// Attach wires c to e and hands back the typed instance, so a call site can
// attach and keep the reference in one expression.
func Attach[T Component](e *Entity, c T) (T, error) {
	if err := e.Attach(c); err != nil {
		var zero T
		return zero, err
	}
	return c, nil
}

// Has reports whether a component of kind T is attached. O(1), no side
// effects; a kind that was never registered anywhere is simply not attached.
func Has[T Component](e *Entity) bool {
	id, ok := types.lookup(reflect.TypeOf((*T)(nil)).Elem())
	return ok && e.mask&(1<<id) != 0
}

// Get returns the attached component of kind T, or ErrComponentNotFound.
// There is no unchecked variant.
func Get[T Component](e *Entity) (T, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	id, ok := types.lookup(t)
	if !ok || e.mask&(1<<id) == 0 {
		var zero T
		return zero, fmt.Errorf("get %s: %w", t, ErrComponentNotFound)
	}
	return e.byType[id].(T), nil
}

// Update ticks every component in insertion order. The active flag is
// deliberately not consulted: a destroyed entity keeps ticking until the
// manager's next Refresh, matching the one-way destroy-then-sweep lifecycle.
func (e *Entity) Update(dt time.Duration) {
	for _, c := range e.components {
		if u, ok := c.(Updater); ok {
			u.Update(dt)
		}
	}
}

// Draw renders every component in insertion order, again without consulting
// the active flag. The manager calls this only after the full update pass.
func (e *Entity) Draw() {
	for _, c := range e.components {
		if d, ok := c.(Drawer); ok {
			d.Draw()
		}
	}
}

// Destroy marks the entity inactive. Idempotent, and one-way: nothing brings
// an entity back. Components stay attached and ticking until the manager's
// Refresh removes the entity.
func (e *Entity) Destroy() { e.active = false }

// Active reports whether the entity has not been destroyed.
func (e *Entity) Active() bool { return e.active }

// detach severs every ownership link so swept components cannot be reached
// through the entity nor reach back into it.
func (e *Entity) detach() {
	for _, c := range e.components {
		c.setOwner(nil)
	}
	e.components = nil
	e.byType = [MaxComponentTypes]Component{}
	e.mask = 0
}
