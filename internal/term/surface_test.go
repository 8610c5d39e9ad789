package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thicketgame/engine/internal/config"
)

func newTestSurface(t *testing.T, cfg config.WindowConfig) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewWithScreen(sim, cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(s.Fini)
	return s, sim
}

func cellRune(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := sim.GetContents()
	require.Less(t, y*w+x, len(cells))
	cell := cells[y*w+x]
	require.NotEmpty(t, cell.Runes)
	return cell.Runes[0]
}

func TestSurfaceSetCellAndShow(t *testing.T) {
	s, sim := newTestSurface(t, config.WindowConfig{Title: "t", Cols: 20, Rows: 10})

	s.SetCell(2, 3, 'v', StyleFg(tcell.ColorGreen))
	s.Show()

	assert.Equal(t, 'v', cellRune(t, sim, 2, 3))
}

func TestSurfacePrint(t *testing.T) {
	s, sim := newTestSurface(t, config.WindowConfig{Cols: 20, Rows: 10})

	s.Print(1, 0, tcell.StyleDefault, "hi")
	s.Show()

	assert.Equal(t, 'h', cellRune(t, sim, 1, 0))
	assert.Equal(t, 'i', cellRune(t, sim, 2, 0))
}

func TestSurfaceBounds(t *testing.T) {
	s, _ := newTestSurface(t, config.WindowConfig{Cols: 40, Rows: 12})
	cols, rows := s.Bounds()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 12, rows)
}

func TestSurfaceFullscreenTracksScreen(t *testing.T) {
	s, sim := newTestSurface(t, config.WindowConfig{Fullscreen: true})
	sw, sh := sim.Size()
	cols, rows := s.Bounds()
	assert.Equal(t, sw, cols)
	assert.Equal(t, sh, rows)
}

func TestSurfaceEventPump(t *testing.T) {
	s, sim := newTestSurface(t, config.WindowConfig{Cols: 10, Rows: 5})

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case ev := <-s.Events():
		key, ok := ev.(*tcell.EventKey)
		require.True(t, ok)
		assert.Equal(t, 'q', key.Rune())
	case <-time.After(2 * time.Second):
		t.Fatal("injected key never reached the event channel")
	}
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("red")
	assert.True(t, ok)
	assert.Equal(t, tcell.ColorRed, c)

	_, ok = ColorByName("not-a-color")
	assert.False(t, ok)
}
