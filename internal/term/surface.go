package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/thicketgame/engine/internal/config"
)

// Surface is the terminal window: it owns the tcell screen, pumps input
// events into a channel, and exposes the cell operations the draw pass
// needs. The playfield is the configured cols x rows box (or the whole
// terminal in fullscreen); drawing outside the physical screen is a no-op,
// tcell clips it.
type Surface struct {
	screen     tcell.Screen
	events     chan tcell.Event
	log        *zap.Logger
	cols, rows int
	fullscreen bool
}

// New opens the real terminal screen.
func New(cfg config.WindowConfig, log *zap.Logger) (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen, cfg, log)
}

// NewWithScreen wraps an already-created screen. Tests pass a
// tcell.SimulationScreen here.
func NewWithScreen(screen tcell.Screen, cfg config.WindowConfig, log *zap.Logger) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	s := &Surface{
		screen:     screen,
		events:     make(chan tcell.Event, 100),
		log:        log,
		cols:       cfg.Cols,
		rows:       cfg.Rows,
		fullscreen: cfg.Fullscreen,
	}
	if s.cols < 1 || s.rows < 1 {
		s.fullscreen = true
	}
	if s.fullscreen {
		s.cols, s.rows = screen.Size()
	}

	go s.pump()

	log.Info("surface ready",
		zap.Int("cols", s.cols),
		zap.Int("rows", s.rows),
		zap.Bool("fullscreen", s.fullscreen))
	return s, nil
}

// pump feeds PollEvent into the channel until the screen is finalized, at
// which point PollEvent returns nil and the channel closes.
func (s *Surface) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		s.events <- ev
	}
}

// Events is the input stream. Drain it with a non-blocking loop once per
// tick; nothing else reads it.
func (s *Surface) Events() <-chan tcell.Event { return s.events }

// Bounds reports the playfield size in cells.
func (s *Surface) Bounds() (cols, rows int) { return s.cols, s.rows }

// Resize re-reads the terminal size after an EventResize. Only fullscreen
// surfaces track the terminal; fixed ones keep their configured box.
func (s *Surface) Resize() {
	if s.fullscreen {
		s.cols, s.rows = s.screen.Size()
	}
	s.screen.Sync()
}

// SetCell puts one rune at a cell.
func (s *Surface) SetCell(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Print writes a string left to right starting at a cell.
func (s *Surface) Print(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Clear wipes the back buffer; Show presents it.
func (s *Surface) Clear() { s.screen.Clear() }
func (s *Surface) Show()  { s.screen.Show() }

// Fini restores the terminal. Call exactly once, last.
func (s *Surface) Fini() { s.screen.Fini() }

// ColorByName resolves a tcell color name ("red", "darkgreen", ...).
func ColorByName(name string) (tcell.Color, bool) {
	c, ok := tcell.ColorNames[name]
	return c, ok
}

// StyleFg is the plain foreground style used for glyphs.
func StyleFg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c)
}
