package event

// Game event types carried by the bus.

// CritterExpired fires when a lifetime runs out and the critter destroys
// itself. The spawner uses it to keep the population topped up.
type CritterExpired struct {
	Entity    uint64
	Archetype string
}

// SpawnRequested asks the game to spawn one critter of the named archetype
// on the next tick.
type SpawnRequested struct {
	Archetype string
}

// QuitRequested asks the game to stop after the current tick.
type QuitRequested struct{}
