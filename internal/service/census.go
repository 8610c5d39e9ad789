package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/thicketgame/engine/internal/core/ecs"
	"github.com/thicketgame/engine/internal/core/event"
)

// Census logs population statistics at a fixed tick interval: current
// population plus expiries and respawn requests since the last report.
type Census struct {
	mgr      *ecs.Manager
	log      *zap.Logger
	interval int

	tick      int
	expired   int
	requested int
}

func NewCensus(mgr *ecs.Manager, bus *event.Bus, log *zap.Logger, interval int) *Census {
	if interval < 1 {
		interval = 1
	}
	c := &Census{mgr: mgr, log: log, interval: interval}
	event.Subscribe(bus, func(event.CritterExpired) { c.expired++ })
	event.Subscribe(bus, func(event.SpawnRequested) { c.requested++ })
	return c
}

func (c *Census) Phase() Phase { return PhaseCensus }

func (c *Census) Tick(time.Duration) {
	c.tick++
	if c.tick%c.interval != 0 {
		return
	}
	c.log.Info("census",
		zap.Int("population", c.mgr.Len()),
		zap.Int("expired", c.expired),
		zap.Int("respawns", c.requested))
	c.expired = 0
	c.requested = 0
}
