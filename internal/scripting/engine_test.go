package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, scripts map[string]string) *Engine {
	t.Helper()
	dir := t.TempDir()
	for name, body := range scripts {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	e := NewEngine(zap.NewNop())
	t.Cleanup(e.Close)
	require.NoError(t, e.LoadDir(dir))
	return e
}

func TestDecideRoundTrip(t *testing.T) {
	e := newTestEngine(t, map[string]string{
		"turn.lua": `
function turn_decide(ctx)
    -- reverse the heading, nudged by position parity
    local dx = -ctx.dx
    if ctx.x >= ctx.cols / 2 then
        dx = dx / 2
    end
    return { dx = dx, dy = -ctx.dy }
end
`,
	})

	assert.Equal(t, 1, e.Loaded())
	assert.True(t, e.HasFunction("turn_decide"))

	d, err := e.Decide("turn_decide", BehaviorContext{
		X: 10, Y: 5, DX: 1, DY: -1, Age: 7, Cols: 80, Rows: 24, Tick: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, -1.0, d.DX)
	assert.Equal(t, 1.0, d.DY)
}

func TestDecideSeesWholeContext(t *testing.T) {
	e := newTestEngine(t, map[string]string{
		"echo.lua": `
function echo_decide(ctx)
    return { dx = ctx.age + ctx.cols + ctx.rows, dy = ctx.tick }
end
`,
	})

	d, err := e.Decide("echo_decide", BehaviorContext{Age: 3, Cols: 10, Rows: 4, Tick: 25})
	require.NoError(t, err)
	assert.Equal(t, 17.0, d.DX)
	assert.Equal(t, 25.0, d.DY)
}

func TestDecideMissingFunction(t *testing.T) {
	e := newTestEngine(t, nil)

	d, err := e.Decide("nope_decide", BehaviorContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Zero(t, d.DX)
	assert.Zero(t, d.DY)
	assert.False(t, e.HasFunction("nope_decide"))
}

func TestDecideRuntimeError(t *testing.T) {
	e := newTestEngine(t, map[string]string{
		"bad.lua": `
function bad_decide(ctx)
    error("no idea where to go")
end
`,
	})

	d, err := e.Decide("bad_decide", BehaviorContext{})
	require.Error(t, err)
	assert.Zero(t, d)
}

func TestDecideNonTableResult(t *testing.T) {
	e := newTestEngine(t, map[string]string{
		"num.lua": `
function num_decide(ctx)
    return 42
end
`,
	})

	_, err := e.Decide("num_decide", BehaviorContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want table")
}

func TestLoadDirMissingIsFine(t *testing.T) {
	e := NewEngine(zap.NewNop())
	t.Cleanup(e.Close)
	require.NoError(t, e.LoadDir(filepath.Join(t.TempDir(), "absent")))
	assert.Zero(t, e.Loaded())
}

func TestLoadDirBrokenScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.lua"), []byte("function ("), 0o644))

	e := NewEngine(zap.NewNop())
	t.Cleanup(e.Close)
	assert.Error(t, e.LoadDir(dir))
}
