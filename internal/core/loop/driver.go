package loop

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultFPS is the frame budget the driver falls back to: 60 frames per
// second, a step of 1000/60 ms.
const DefaultFPS = 60

// Game is the contract the driver paces. Once per tick, in this exact order:
// HandleEvents, Update, Render, Sweep. Update must reach the manager's update
// pass, Render its draw pass and Sweep its refresh pass, so a tick is always
// update, then draw, then sweep, never interleaved. Running is checked after
// each full tick and gates continuation.
type Game interface {
	HandleEvents()
	Update(dt time.Duration)
	Render()
	Sweep()
	Running() bool
}

// Driver runs the fixed-step frame loop. The step passed to Update is always
// the configured one: the loop trades wall-clock accuracy for a deterministic
// simulation step, and late ticks simply delay the following ones.
type Driver struct {
	step time.Duration
	log  *zap.Logger
}

// NewDriver derives the step from the target frames per second. Values below
// 1 fall back to DefaultFPS.
func NewDriver(fps int, log *zap.Logger) *Driver {
	if fps < 1 {
		fps = DefaultFPS
	}
	return &Driver{
		step: time.Second / time.Duration(fps),
		log:  log,
	}
}

// Step reports the fixed step between ticks.
func (d *Driver) Step() time.Duration { return d.step }

// Run drives g until it stops running or ctx is cancelled. Both ends are
// normal shutdown; the caller handles teardown either way.
func (d *Driver) Run(ctx context.Context, g Game) {
	ticker := time.NewTicker(d.step)
	defer ticker.Stop()

	d.log.Info("frame loop started", zap.Duration("step", d.step))

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			d.log.Info("frame loop cancelled", zap.Uint64("ticks", ticks))
			return
		case <-ticker.C:
			start := time.Now()
			g.HandleEvents()
			g.Update(d.step)
			g.Render()
			g.Sweep()
			ticks++
			if took := time.Since(start); took > d.step {
				d.log.Warn("tick over budget",
					zap.Duration("took", took),
					zap.Duration("step", d.step),
					zap.Uint64("tick", ticks))
			}
			if !g.Running() {
				d.log.Info("frame loop stopped", zap.Uint64("ticks", ticks))
				return
			}
		}
	}
}
