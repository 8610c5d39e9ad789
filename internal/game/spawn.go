package game

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/thicketgame/engine/internal/component"
	"github.com/thicketgame/engine/internal/core/ecs"
	"github.com/thicketgame/engine/internal/data"
	"github.com/thicketgame/engine/internal/term"
)

const playerSpeed = 15 // cells per second, a bit faster than any critter

var (
	playerStyle = term.StyleFg(tcell.ColorWhite).Bold(true)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// playerRef keeps direct handles on the avatar so the event handler can
// steer without searching the population.
type playerRef struct {
	entity *ecs.Entity
	input  *component.Input
}

// spawnPlayer puts the avatar in the middle of the pen. Input goes on
// before Transform so a fresh heading moves the avatar the same tick it is
// pressed.
func (g *Game) spawnPlayer() {
	e := g.mgr.CreateEntity()
	in, err := ecs.Attach(e, &component.Input{})
	if err != nil {
		g.abandon(e, "player input", err)
		return
	}
	if err := e.Attach(&component.Transform{
		X: float64(g.cols / 2), Y: float64(g.rows / 2),
		Speed: playerSpeed,
		Cols:  g.cols, Rows: g.rows,
	}); err != nil {
		g.abandon(e, "player transform", err)
		return
	}
	if err := e.Attach(component.NewGlyph('@', playerStyle, g.surface)); err != nil {
		g.abandon(e, "player glyph", err)
		return
	}
	g.player = &playerRef{entity: e, input: in}
}

// spawnInitialPopulation fills the pen from the manifest counts. A nonzero
// spawn.population caps the total and deals it round-robin in manifest
// order, which keeps small test pens mixed.
func (g *Game) spawnInitialPopulation() {
	names := g.table.Names()
	if len(names) == 0 {
		return
	}

	if total := g.cfg.Spawn.Population; total > 0 {
		for i := 0; i < total; i++ {
			g.spawnCritter(names[i%len(names)])
		}
		return
	}
	for _, name := range names {
		for i := 0; i < g.table.Get(name).Count; i++ {
			g.spawnCritter(name)
		}
	}
}

// spawnCritter builds one critter from its archetype at a random cell.
// Attach order matters: Behavior.Init reads the Transform, so Transform
// goes on first.
func (g *Game) spawnCritter(name string) {
	tpl := g.table.Get(name)
	if tpl == nil {
		g.log.Warn("spawn request for unknown archetype", zap.String("archetype", name))
		return
	}

	e := g.mgr.CreateEntity()
	if err := e.Attach(&component.Transform{
		X: float64(g.rng.Intn(g.cols)), Y: float64(g.rng.Intn(g.rows)),
		Speed: tpl.Speed,
		Cols:  g.cols, Rows: g.rows,
	}); err != nil {
		g.abandon(e, name+" transform", err)
		return
	}

	color, _ := term.ColorByName(tpl.Color) // validated at manifest load
	if err := e.Attach(component.NewGlyph(tpl.Rune(), term.StyleFg(color), g.surface)); err != nil {
		g.abandon(e, name+" glyph", err)
		return
	}

	fn := tpl.Behavior
	if g.missing[fn] {
		fn = "" // warned at boot; wander instead
	}
	if err := e.Attach(component.NewBehavior(fn, decideInterval, g.scripts, g.rng, g.log)); err != nil {
		g.abandon(e, name+" behavior", err)
		return
	}

	if tpl.Lifespan > 0 {
		if err := e.Attach(component.NewLifetime(g.jitterTTL(tpl.Lifespan), name, g.bus)); err != nil {
			g.abandon(e, name+" lifetime", err)
			return
		}
	}
}

// jitterTTL stretches a lifespan by up to a fifth so a cohort spawned on
// the same tick does not expire on the same tick.
func (g *Game) jitterTTL(ttl int) int {
	return ttl + g.rng.Intn(ttl/5+1)
}

// checkBehaviors warns once per archetype whose decide function never got
// loaded; those critters fall back to the built-in wander.
func (g *Game) checkBehaviors(table *data.ArchetypeTable) {
	for _, name := range table.Names() {
		fn := table.Get(name).Behavior
		if fn == "" || g.scripts.HasFunction(fn) {
			continue
		}
		g.missing[fn] = true
		g.log.Warn("behavior function not loaded, archetype will wander",
			zap.String("archetype", name), zap.String("fn", fn))
	}
}

// abandon rolls back a half-built entity after an attach failure. The
// sweep removes it before it can tick with a partial component set.
func (g *Game) abandon(e *ecs.Entity, what string, err error) {
	g.log.Error("spawn failed", zap.String("component", what), zap.Error(err))
	e.Destroy()
}
