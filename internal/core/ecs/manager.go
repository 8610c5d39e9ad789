package ecs

import "time"

// Manager owns the whole entity population. It is the only place entities
// are created and the only place they are destroyed. Update, Draw and
// Refresh are plain sequential passes; the single-threaded frame driver is
// the only caller, once per tick, so no locking exists anywhere here.
type Manager struct {
	entities []*Entity
	nextID   uint64
}

func NewManager() *Manager {
	return &Manager{entities: make([]*Entity, 0, 64)}
}

// CreateEntity constructs a new active entity, appends it to the population
// and returns it. The pointer stays valid until Refresh removes the entity.
func (m *Manager) CreateEntity() *Entity {
	m.nextID++
	e := &Entity{
		id:         m.nextID,
		components: make([]Component, 0, 4),
		active:     true,
	}
	m.entities = append(m.entities, e)
	return e
}

// Update runs the update pass: every entity in insertion order, inactive
// ones included.
func (m *Manager) Update(dt time.Duration) {
	for _, e := range m.entities {
		e.Update(dt)
	}
}

// Draw runs the draw pass, a separate full traversal strictly after Update's.
// The two passes never interleave: all updates of a tick happen before any
// draw of that tick.
func (m *Manager) Draw() {
	for _, e := range m.entities {
		e.Draw()
	}
}

// Refresh sweeps inactive entities out of the population, preserving the
// relative order of survivors, and detaches the swept entities' components.
// This is the sole destruction point apart from dropping the manager itself.
// Returns how many entities were removed.
func (m *Manager) Refresh() int {
	kept := m.entities[:0]
	for _, e := range m.entities {
		if e.active {
			kept = append(kept, e)
			continue
		}
		e.detach()
	}
	removed := len(m.entities) - len(kept)
	for i := len(kept); i < len(m.entities); i++ {
		m.entities[i] = nil // drop tail refs
	}
	m.entities = kept
	return removed
}

// Len reports the current population size, inactive entities included.
func (m *Manager) Len() int { return len(m.entities) }
