package ecs

import "time"

// Component is anything attachable to an Entity. Concrete kinds embed Base,
// which carries the back-reference to the owning entity and satisfies the
// wiring method below. Behavior is opted into through the Initializer,
// Updater and Drawer interfaces; a kind implements only the hooks it needs.
type Component interface {
	setOwner(e *Entity)
	Owner() *Entity
}

// Base is the embeddable root of every component. The zero value is ready to
// use; Attach wires the owner before any hook runs.
type Base struct {
	owner *Entity
}

func (b *Base) setOwner(e *Entity) { b.owner = e }

// Owner returns the entity this component is attached to. The reference is
// non-owning and valid only while that entity is alive; it is cleared when
// the manager sweeps the entity. Components never outlive their entity.
func (b *Base) Owner() *Entity { return b.owner }

// Initializer components get Init exactly once, immediately after the owner
// back-reference is wired and the component is indexed, before Attach returns.
type Initializer interface {
	Init()
}

// Updater components tick once per frame, driven by the owning entity during
// the manager's update pass.
type Updater interface {
	Update(dt time.Duration)
}

// Drawer components draw once per frame, during the manager's draw pass,
// after every entity's update for that tick has run.
type Drawer interface {
	Draw()
}
