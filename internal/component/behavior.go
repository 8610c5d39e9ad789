package component

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/thicketgame/engine/internal/core/ecs"
	"github.com/thicketgame/engine/internal/scripting"
)

// Decider picks a new heading for a critter. The scripting engine satisfies
// this; tests stub it.
type Decider interface {
	Decide(fn string, ctx scripting.BehaviorContext) (scripting.BehaviorDecision, error)
}

// Behavior steers the owner's Transform. Every interval ticks it asks the
// Lua decide function for a heading; without a function (or when the script
// fails) it falls back to the built-in wander. Script failures are logged
// once per component, then stay quiet.
type Behavior struct {
	ecs.Base
	Fn       string // lua function name; empty means wander only
	Interval int    // ticks between decisions

	decider Decider
	rng     *rand.Rand
	log     *zap.Logger

	age    int
	warned bool
}

func NewBehavior(fn string, interval int, decider Decider, rng *rand.Rand, log *zap.Logger) *Behavior {
	if interval < 1 {
		interval = 1
	}
	return &Behavior{Fn: fn, Interval: interval, decider: decider, rng: rng, log: log}
}

// Init points the owner somewhere random so freshly spawned critters do not
// all march in the same direction. Expects the Transform to be attached
// already; spawn order guarantees that.
func (c *Behavior) Init() {
	if tr, err := ecs.Get[*Transform](c.Owner()); err == nil {
		tr.DX, tr.DY = c.randomHeading()
	}
}

func (c *Behavior) Update(time.Duration) {
	c.age++
	if c.age%c.Interval != 0 {
		return
	}
	tr, err := ecs.Get[*Transform](c.Owner())
	if err != nil {
		return
	}

	if c.Fn == "" || c.decider == nil {
		c.wander(tr)
		return
	}

	d, err := c.decider.Decide(c.Fn, scripting.BehaviorContext{
		X: tr.X, Y: tr.Y,
		DX: tr.DX, DY: tr.DY,
		Age:  c.age,
		Cols: tr.Cols, Rows: tr.Rows,
		Tick: uint64(c.age),
	})
	if err != nil {
		if !c.warned {
			c.warned = true
			c.log.Warn("behavior script failed, keeping heading",
				zap.String("fn", c.Fn), zap.Error(err))
		}
		return
	}
	tr.DX, tr.DY = clampUnit(d.DX), clampUnit(d.DY)
}

// wander keeps the heading most of the time and occasionally turns.
func (c *Behavior) wander(tr *Transform) {
	if c.rng.Intn(4) != 0 {
		return
	}
	tr.DX, tr.DY = c.randomHeading()
}

func (c *Behavior) randomHeading() (float64, float64) {
	// 8 compass directions plus standing still.
	return float64(c.rng.Intn(3) - 1), float64(c.rng.Intn(3) - 1)
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
