package component

import (
	"time"

	"github.com/thicketgame/engine/internal/core/ecs"
)

// Transform is position and heading in cell space. Update integrates the
// heading at Speed cells per second and bounces off the playfield edges, so
// nothing ever leaves the box [0,Cols-1] x [0,Rows-1].
type Transform struct {
	ecs.Base
	X, Y   float64
	DX, DY float64 // heading, components in [-1, 1]
	Speed  float64 // cells per second
	Cols   int     // playfield bounds, set at spawn
	Rows   int
}

func (c *Transform) Update(dt time.Duration) {
	c.X += c.DX * c.Speed * dt.Seconds()
	c.Y += c.DY * c.Speed * dt.Seconds()

	if c.X < 0 {
		c.X, c.DX = 0, -c.DX
	} else if max := float64(c.Cols - 1); c.X > max {
		c.X, c.DX = max, -c.DX
	}
	if c.Y < 0 {
		c.Y, c.DY = 0, -c.DY
	} else if max := float64(c.Rows - 1); c.Y > max {
		c.Y, c.DY = max, -c.DY
	}
}
