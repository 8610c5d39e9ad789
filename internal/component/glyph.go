package component

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/thicketgame/engine/internal/core/ecs"
	"github.com/thicketgame/engine/internal/term"
)

// Glyph draws the owner as one colored rune at its Transform cell. An owner
// without a Transform draws nothing.
type Glyph struct {
	ecs.Base
	Rune    rune
	Style   tcell.Style
	surface *term.Surface
}

func NewGlyph(r rune, style tcell.Style, surface *term.Surface) *Glyph {
	return &Glyph{Rune: r, Style: style, surface: surface}
}

func (c *Glyph) Draw() {
	tr, err := ecs.Get[*Transform](c.Owner())
	if err != nil {
		return
	}
	c.surface.SetCell(int(math.Round(tr.X)), int(math.Round(tr.Y)), c.Rune, c.Style)
}
