package game

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/thicketgame/engine/internal/config"
	"github.com/thicketgame/engine/internal/core/ecs"
	"github.com/thicketgame/engine/internal/core/event"
	"github.com/thicketgame/engine/internal/data"
	"github.com/thicketgame/engine/internal/scripting"
	"github.com/thicketgame/engine/internal/service"
	"github.com/thicketgame/engine/internal/term"
)

const (
	// decideInterval is how many ticks a critter keeps a heading before its
	// behavior gets to pick a new one.
	decideInterval = 15
	// censusInterval is the tick gap between population reports: 300 ticks
	// is five seconds at the default frame rate.
	censusInterval = 300
)

// Game wires the whole thing together: it owns the manager, the surface,
// the bus, the scripting engine and the services, and hands the frame
// driver its per-tick faces.
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	step    time.Duration
	mgr     *ecs.Manager
	surface *term.Surface
	bus     *event.Bus
	svc     *service.Runner
	scripts *scripting.Engine
	table   *data.ArchetypeTable
	rng     *rand.Rand
	missing map[string]bool // behavior fns warned about at boot

	player *playerRef
	cols   int // playfield, excludes the status row
	rows   int

	running bool
	tick    uint64
}

// New opens the real terminal and builds the game.
func New(cfg *config.Config, log *zap.Logger) (*Game, error) {
	surface, err := term.New(cfg.Window, log)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	g, err := NewWithSurface(cfg, log, surface)
	if err != nil {
		surface.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithSurface builds the game on an existing surface. Tests come through
// here with a simulation screen.
func NewWithSurface(cfg *config.Config, log *zap.Logger, surface *term.Surface) (*Game, error) {
	seed := cfg.Spawn.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	table := data.DefaultArchetypes()
	if cfg.Data.Archetypes != "" {
		var err error
		table, err = data.LoadArchetypes(cfg.Data.Archetypes)
		if err != nil {
			return nil, fmt.Errorf("load archetypes: %w", err)
		}
	}

	scripts := scripting.NewEngine(log)
	if cfg.Data.Scripts != "" {
		if err := scripts.LoadDir(cfg.Data.Scripts); err != nil {
			scripts.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}

	cols, rows := surface.Bounds()
	g := &Game{
		cfg:     cfg,
		log:     log,
		step:    time.Second / time.Duration(max(cfg.Loop.FPS, 1)),
		mgr:     ecs.NewManager(),
		surface: surface,
		bus:     event.NewBus(),
		svc:     service.NewRunner(),
		scripts: scripts,
		table:   table,
		rng:     rand.New(rand.NewSource(seed)),
		missing: make(map[string]bool),
		cols:    cols,
		rows:    rows - 1, // bottom row is the status bar
		running: true,
	}
	if g.rows < 1 {
		g.rows = 1
	}

	event.Subscribe(g.bus, func(event.QuitRequested) { g.running = false })
	event.Subscribe(g.bus, func(ev event.SpawnRequested) { g.spawnCritter(ev.Archetype) })

	g.svc.Register(service.NewSpawner(g.bus, log))
	g.svc.Register(service.NewCensus(g.mgr, g.bus, log, censusInterval))

	g.checkBehaviors(table)
	g.spawnPlayer()
	g.spawnInitialPopulation()

	log.Info("game ready",
		zap.Int("archetypes", table.Count()),
		zap.Int("population", g.mgr.Len()),
		zap.Int("scripts", scripts.Loaded()),
		zap.Int64("seed", seed))
	return g, nil
}

// Update dispatches last tick's events, then runs the update pass.
func (g *Game) Update(dt time.Duration) {
	g.tick++
	g.bus.SwapBuffers()
	g.bus.DispatchAll()
	g.mgr.Update(dt)
}

// Render runs the draw pass into a cleared buffer, lays the status bar over
// it and presents the frame.
func (g *Game) Render() {
	g.surface.Clear()
	g.mgr.Draw()
	g.drawStatus()
	g.surface.Show()
}

// Sweep removes the entities destroyed this tick, then lets the services
// react to what happened.
func (g *Game) Sweep() {
	g.mgr.Refresh()
	g.svc.Tick(g.step)
}

// Running reports whether the game wants another tick.
func (g *Game) Running() bool { return g.running }

// Tick is the frame counter, for the status bar and tests.
func (g *Game) Tick() uint64 { return g.tick }

// Population is the current entity count, player included.
func (g *Game) Population() int { return g.mgr.Len() }

// Clean tears everything down. Call once, after the loop has stopped.
func (g *Game) Clean() {
	g.scripts.Close()
	g.surface.Fini()
	g.log.Info("game over",
		zap.Uint64("ticks", g.tick),
		zap.Int("population", g.mgr.Len()))
}

func (g *Game) drawStatus() {
	line := fmt.Sprintf(" %s  tick %d  critters %d ",
		g.cfg.Window.Title, g.tick, g.mgr.Len()-1)
	g.surface.Print(0, g.rows, statusStyle, line)
}
