package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/thicketgame/engine/internal/core/event"
)

// HandleEvents drains everything the terminal queued since last tick. A
// closed channel means the screen is gone, so the game stops directly
// instead of going through the bus.
func (g *Game) HandleEvents() {
	for {
		select {
		case ev, ok := <-g.surface.Events():
			if !ok {
				g.running = false
				return
			}
			g.handleEvent(ev)
		default:
			return
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ev)
	case *tcell.EventResize:
		g.surface.Resize()
		// Live entities keep the pen size they were spawned with; the
		// lifetime churn replaces them inside the new bounds soon enough.
		g.cols, g.rows = g.surface.Bounds()
		g.rows--
		if g.rows < 1 {
			g.rows = 1
		}
	}
}

// handleKey steers the avatar and fields the quit keys. Quits ride the bus
// like every other event; HandleEvents runs before the tick's dispatch, so
// they land the same tick they are read.
func (g *Game) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		event.Emit(g.bus, event.QuitRequested{})
	case tcell.KeyUp:
		g.steer(0, -1)
	case tcell.KeyDown:
		g.steer(0, 1)
	case tcell.KeyLeft:
		g.steer(-1, 0)
	case tcell.KeyRight:
		g.steer(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			event.Emit(g.bus, event.QuitRequested{})
		case ' ':
			g.steer(0, 0)
		}
	}
}

func (g *Game) steer(dx, dy float64) {
	if g.player == nil {
		return
	}
	g.player.input.DX, g.player.input.DY = dx, dy
}
