package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thicketgame/engine/internal/core/ecs"
)

func TestTransformIntegratesHeading(t *testing.T) {
	m := ecs.NewManager()
	e := m.CreateEntity()
	tr, err := ecs.Attach(e, &Transform{X: 1, Y: 2, DX: 1, DY: 0, Speed: 2, Cols: 80, Rows: 24})
	require.NoError(t, err)

	e.Update(500 * time.Millisecond)

	assert.InDelta(t, 2.0, tr.X, 1e-9, "x advances by speed*dt")
	assert.InDelta(t, 2.0, tr.Y, 1e-9, "y unchanged with zero heading")
}

func TestTransformBouncesOffEdges(t *testing.T) {
	m := ecs.NewManager()
	e := m.CreateEntity()
	tr, err := ecs.Attach(e, &Transform{X: 9, Y: 0, DX: 1, DY: -1, Speed: 10, Cols: 10, Rows: 5})
	require.NoError(t, err)

	e.Update(time.Second)

	assert.Equal(t, 9.0, tr.X, "clamped to the right edge")
	assert.Equal(t, -1.0, tr.DX, "heading reflects off the edge")
	assert.Equal(t, 0.0, tr.Y, "clamped to the top edge")
	assert.Equal(t, 1.0, tr.DY)
}

func TestInputDrivesTransform(t *testing.T) {
	m := ecs.NewManager()
	e := m.CreateEntity()
	// Input before Transform, so the heading written this tick is integrated
	// this tick.
	in, err := ecs.Attach(e, &Input{})
	require.NoError(t, err)
	tr, err := ecs.Attach(e, &Transform{Speed: 5, Cols: 20, Rows: 10})
	require.NoError(t, err)

	in.DX, in.DY = 1, 0
	e.Update(100 * time.Millisecond)
	assert.Equal(t, 1.0, tr.DX)
	assert.Equal(t, 0.0, tr.DY)
	assert.Greater(t, tr.X, 0.0, "input heading moves the transform the same tick")

	in.DX, in.DY = 0, 0
	x := tr.X
	e.Update(100 * time.Millisecond)
	assert.Equal(t, x, tr.X, "zero heading holds position")
}

func TestInputWithoutTransformIsHarmless(t *testing.T) {
	m := ecs.NewManager()
	e := m.CreateEntity()
	_, err := ecs.Attach(e, &Input{DX: 1})
	require.NoError(t, err)
	e.Update(time.Millisecond)
}
