package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/thicketgame/engine/internal/core/event"
)

// Spawner keeps the critter population at the manifest counts. Expiries
// arrive on the bus, get batched into a per-archetype deficit, and go back
// out as spawn requests on the next runner tick. The game owns the actual
// spawning; this service only does the bookkeeping.
type Spawner struct {
	bus     *event.Bus
	log     *zap.Logger
	deficit map[string]int
}

func NewSpawner(bus *event.Bus, log *zap.Logger) *Spawner {
	s := &Spawner{
		bus:     bus,
		log:     log,
		deficit: make(map[string]int, 8),
	}
	event.Subscribe(bus, s.onExpired)
	return s
}

func (s *Spawner) onExpired(ev event.CritterExpired) {
	s.deficit[ev.Archetype]++
}

func (s *Spawner) Phase() Phase { return PhaseSpawn }

func (s *Spawner) Tick(time.Duration) {
	for archetype, n := range s.deficit {
		for i := 0; i < n; i++ {
			event.Emit(s.bus, event.SpawnRequested{Archetype: archetype})
		}
		s.log.Debug("respawn requested", zap.String("archetype", archetype), zap.Int("count", n))
		delete(s.deficit, archetype)
	}
}
