// stress runs the entity core headless at a population far beyond the
// game's and reports the tick rate. With -profile it drops a pprof file
// in the working directory:
//
//	go build ./cmd/stress && ./stress -profile cpu
//	go tool pprof -http=":8000" ./stress cpu.pprof
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/thicketgame/engine/internal/core/ecs"
)

// spin bounces a point inside a fixed box, the same work a Transform does.
type spin struct {
	ecs.Base
	x, y   float64
	dx, dy float64
}

func (c *spin) Update(dt time.Duration) {
	step := dt.Seconds() * 10
	c.x += c.dx * step
	c.y += c.dy * step
	if c.x < 0 || c.x > 200 {
		c.dx = -c.dx
	}
	if c.y < 0 || c.y > 200 {
		c.dy = -c.dy
	}
}

// blot stands in for a glyph: a draw hook with a visible side effect.
type blot struct{ ecs.Base }

var drawn uint64

func (c *blot) Draw() { drawn++ }

// decay destroys the owner after its ticks run out, driving the churn.
type decay struct {
	ecs.Base
	ttl int
}

func (c *decay) Update(time.Duration) {
	c.ttl--
	if c.ttl <= 0 {
		c.Owner().Destroy()
	}
}

func main() {
	entities := flag.Int("entities", 10000, "population to maintain")
	ticks := flag.Int("ticks", 3600, "ticks to run")
	ttl := flag.Int("ttl", 600, "mean entity lifespan in ticks")
	mode := flag.String("profile", "", "write a pprof file: cpu or mem")
	flag.Parse()

	var p interface{ Stop() }
	switch *mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	case "":
	default:
		fmt.Fprintf(os.Stderr, "unknown -profile mode %q (want cpu or mem)\n", *mode)
		os.Exit(1)
	}

	if err := run(*entities, *ticks, *ttl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if p != nil {
		p.Stop()
	}
}

func run(entities, ticks, ttl int) error {
	mgr := ecs.NewManager()
	rng := rand.New(rand.NewSource(1))
	step := time.Second / 60

	for i := 0; i < entities; i++ {
		if err := spawn(mgr, rng, ttl); err != nil {
			return err
		}
	}

	var removed int
	start := time.Now()
	for t := 0; t < ticks; t++ {
		mgr.Update(step)
		mgr.Draw()
		n := mgr.Refresh()
		removed += n
		for i := 0; i < n; i++ {
			if err := spawn(mgr, rng, ttl); err != nil {
				return err
			}
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("population %d, ticks %d, churned %d\n", mgr.Len(), ticks, removed)
	fmt.Printf("elapsed %s, %.0f ticks/sec, %d draws\n",
		elapsed.Round(time.Millisecond), float64(ticks)/elapsed.Seconds(), drawn)
	return nil
}

func spawn(mgr *ecs.Manager, rng *rand.Rand, ttl int) error {
	e := mgr.CreateEntity()
	if err := e.Attach(&spin{
		x: rng.Float64() * 200, y: rng.Float64() * 200,
		dx: rng.Float64()*2 - 1, dy: rng.Float64()*2 - 1,
	}); err != nil {
		return err
	}
	if err := e.Attach(&blot{}); err != nil {
		return err
	}
	// Spread the lifespans so the churn is steady instead of bursty.
	return e.Attach(&decay{ttl: ttl/2 + rng.Intn(ttl)})
}
