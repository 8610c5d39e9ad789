package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversNextTick(t *testing.T) {
	b := NewBus()
	var got []CritterExpired
	Subscribe(b, func(ev CritterExpired) { got = append(got, ev) })

	Emit(b, CritterExpired{Entity: 9, Archetype: "vole"})

	// Same tick: nothing delivered yet.
	b.DispatchAll()
	assert.Empty(t, got)

	// Next tick: swap promotes the buffer, dispatch delivers.
	b.SwapBuffers()
	b.DispatchAll()
	require.Len(t, got, 1)
	assert.Equal(t, uint64(9), got[0].Entity)
	assert.Equal(t, "vole", got[0].Archetype)

	// The tick after: buffer was cleared, no redelivery.
	b.SwapBuffers()
	b.DispatchAll()
	assert.Len(t, got, 1)
}

func TestBusEmissionOrderWithinType(t *testing.T) {
	b := NewBus()
	var names []string
	Subscribe(b, func(ev SpawnRequested) { names = append(names, ev.Archetype) })

	Emit(b, SpawnRequested{Archetype: "vole"})
	Emit(b, SpawnRequested{Archetype: "hare"})
	Emit(b, SpawnRequested{Archetype: "wren"})

	b.SwapBuffers()
	b.DispatchAll()
	assert.Equal(t, []string{"vole", "hare", "wren"}, names)
}

func TestBusMultipleHandlersRegistrationOrder(t *testing.T) {
	b := NewBus()
	var order []string
	Subscribe(b, func(QuitRequested) { order = append(order, "first") })
	Subscribe(b, func(QuitRequested) { order = append(order, "second") })

	Emit(b, QuitRequested{})
	b.SwapBuffers()
	b.DispatchAll()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBusUnsubscribedEventsDropped(t *testing.T) {
	b := NewBus()
	Emit(b, CritterExpired{Entity: 1})
	b.SwapBuffers()
	b.DispatchAll() // no handler, no panic
	b.SwapBuffers()
	b.DispatchAll()
}
