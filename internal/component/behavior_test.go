package component

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/thicketgame/engine/internal/core/ecs"
	"github.com/thicketgame/engine/internal/scripting"
)

// deciderFunc adapts a function to the Decider interface.
type deciderFunc func(fn string, ctx scripting.BehaviorContext) (scripting.BehaviorDecision, error)

func (f deciderFunc) Decide(fn string, ctx scripting.BehaviorContext) (scripting.BehaviorDecision, error) {
	return f(fn, ctx)
}

func newBehaviorEntity(t *testing.T, b *Behavior) (*ecs.Entity, *Transform) {
	t.Helper()
	m := ecs.NewManager()
	e := m.CreateEntity()
	tr, err := ecs.Attach(e, &Transform{X: 5, Y: 5, Speed: 1, Cols: 40, Rows: 20})
	require.NoError(t, err)
	_, err = ecs.Attach(e, b)
	require.NoError(t, err)
	return e, tr
}

func TestBehaviorAppliesScriptedHeading(t *testing.T) {
	var gotFn string
	var gotCtx scripting.BehaviorContext
	dec := deciderFunc(func(fn string, ctx scripting.BehaviorContext) (scripting.BehaviorDecision, error) {
		gotFn, gotCtx = fn, ctx
		return scripting.BehaviorDecision{DX: 0.5, DY: -3}, nil
	})

	rng := rand.New(rand.NewSource(1))
	b := NewBehavior("vole_decide", 1, dec, rng, zap.NewNop())
	e, tr := newBehaviorEntity(t, b)

	e.Update(time.Millisecond)

	assert.Equal(t, "vole_decide", gotFn)
	assert.Equal(t, 5.0, gotCtx.X)
	assert.Equal(t, 40, gotCtx.Cols)
	assert.Equal(t, 0.5, tr.DX)
	assert.Equal(t, -1.0, tr.DY, "heading components are clamped to [-1,1]")
}

func TestBehaviorKeepsHeadingOnScriptError(t *testing.T) {
	dec := deciderFunc(func(string, scripting.BehaviorContext) (scripting.BehaviorDecision, error) {
		return scripting.BehaviorDecision{}, errors.New("boom")
	})

	core, logs := observer.New(zap.WarnLevel)
	rng := rand.New(rand.NewSource(1))
	b := NewBehavior("bad_decide", 1, dec, rng, zap.New(core))
	e, tr := newBehaviorEntity(t, b)

	dx, dy := tr.DX, tr.DY // whatever Init rolled
	e.Update(time.Millisecond)
	e.Update(time.Millisecond)

	assert.Equal(t, dx, tr.DX, "failed decisions keep the heading")
	assert.Equal(t, dy, tr.DY)
	assert.Equal(t, 1, logs.Len(), "the failure is logged once, not per tick")
}

func TestBehaviorWanderIsDeterministicPerSeed(t *testing.T) {
	run := func() []float64 {
		rng := rand.New(rand.NewSource(7))
		b := NewBehavior("", 1, nil, rng, zap.NewNop())
		e, tr := newBehaviorEntity(t, b)
		var out []float64
		for i := 0; i < 20; i++ {
			e.Update(time.Millisecond)
			out = append(out, tr.DX, tr.DY)
		}
		return out
	}

	assert.Equal(t, run(), run(), "same seed, same wander")
}

func TestBehaviorInitRollsInitialHeading(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := NewBehavior("", 1000, nil, rng, zap.NewNop())
	_, tr := newBehaviorEntity(t, b)

	assert.Contains(t, []float64{-1, 0, 1}, tr.DX)
	assert.Contains(t, []float64{-1, 0, 1}, tr.DY)
}

func TestBehaviorIntervalGatesDecisions(t *testing.T) {
	calls := 0
	dec := deciderFunc(func(string, scripting.BehaviorContext) (scripting.BehaviorDecision, error) {
		calls++
		return scripting.BehaviorDecision{DX: 1}, nil
	})

	rng := rand.New(rand.NewSource(1))
	b := NewBehavior("vole_decide", 5, dec, rng, zap.NewNop())
	e, _ := newBehaviorEntity(t, b)

	for i := 0; i < 10; i++ {
		e.Update(time.Millisecond)
	}
	assert.Equal(t, 2, calls, "one decision per interval")
}
