package component

import (
	"time"

	"github.com/thicketgame/engine/internal/core/ecs"
)

// Input carries the player's steering state. The event handler writes the
// desired heading; Update copies it onto the Transform every tick. Arrows
// set a direction, space stops (terminals deliver no key-release events, so
// steering is a toggle, not a hold).
type Input struct {
	ecs.Base
	DX, DY float64
}

func (c *Input) Update(time.Duration) {
	tr, err := ecs.Get[*Transform](c.Owner())
	if err != nil {
		return
	}
	tr.DX, tr.DY = c.DX, c.DY
}
