package component

import (
	"time"

	"github.com/thicketgame/engine/internal/core/ecs"
	"github.com/thicketgame/engine/internal/core/event"
)

// Lifetime destroys the owner once its ticks run out and announces the
// expiry on the bus. Only attached to critters with a finite lifespan.
type Lifetime struct {
	ecs.Base
	TTL       int // remaining ticks
	Archetype string

	bus *event.Bus
}

func NewLifetime(ttl int, archetype string, bus *event.Bus) *Lifetime {
	return &Lifetime{TTL: ttl, Archetype: archetype, bus: bus}
}

func (c *Lifetime) Update(time.Duration) {
	// Destroyed entities keep ticking until the sweep; without this guard a
	// kill from elsewhere would still count down and double-announce.
	if !c.Owner().Active() {
		return
	}
	c.TTL--
	if c.TTL > 0 {
		return
	}
	c.Owner().Destroy()
	event.Emit(c.bus, event.CritterExpired{
		Entity:    c.Owner().ID(),
		Archetype: c.Archetype,
	})
}
