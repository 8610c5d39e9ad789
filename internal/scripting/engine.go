package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for critter behavior decisions.
// Single-goroutine access only (game loop).
type Engine struct {
	vm     *lua.LState
	log    *zap.Logger
	loaded int
}

// NewEngine creates an empty Lua engine. Scripts are pulled in with LoadDir;
// an engine with no scripts is fine, every Decide just falls back.
func NewEngine(log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Engine{vm: vm, log: log}
}

// LoadDir loads every .lua file in a directory. A missing directory is not
// an error, matching how optional content dirs behave elsewhere.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read script dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.loaded++
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Loaded reports how many script files have been loaded.
func (e *Engine) Loaded() int { return e.loaded }

// HasFunction reports whether a global Lua function with this name exists.
func (e *Engine) HasFunction(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// Close shuts the VM down. Call once, after the last Decide.
func (e *Engine) Close() { e.vm.Close() }

// BehaviorContext is the critter state handed to a decide function.
type BehaviorContext struct {
	X, Y   float64 // position in cells
	DX, DY float64 // current heading
	Age    int     // ticks since spawn
	Cols   int     // playfield width
	Rows   int     // playfield height
	Tick   uint64  // global tick counter
}

// BehaviorDecision is what a decide function returns: the new heading.
type BehaviorDecision struct {
	DX, DY float64
}

// Decide calls the named Lua function with the packed context and parses the
// returned table. Every failure path returns the zero decision and an error;
// the caller decides how loudly to report it and keeps the old heading.
//
// The Lua side sees one table argument
//
//	{ x, y, dx, dy, age, cols, rows, tick }
//
// and must return a table with numeric dx and dy.
func (e *Engine) Decide(fn string, ctx BehaviorContext) (BehaviorDecision, error) {
	f := e.vm.GetGlobal(fn)
	if f == lua.LNil {
		return BehaviorDecision{}, fmt.Errorf("lua function %s not found", fn)
	}

	t := e.vm.NewTable()
	t.RawSetString("x", lua.LNumber(ctx.X))
	t.RawSetString("y", lua.LNumber(ctx.Y))
	t.RawSetString("dx", lua.LNumber(ctx.DX))
	t.RawSetString("dy", lua.LNumber(ctx.DY))
	t.RawSetString("age", lua.LNumber(ctx.Age))
	t.RawSetString("cols", lua.LNumber(ctx.Cols))
	t.RawSetString("rows", lua.LNumber(ctx.Rows))
	t.RawSetString("tick", lua.LNumber(ctx.Tick))

	if err := e.vm.CallByParam(lua.P{
		Fn:      f,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Debug("lua decide error", zap.String("fn", fn), zap.Error(err))
		return BehaviorDecision{}, fmt.Errorf("lua %s: %w", fn, err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return BehaviorDecision{}, fmt.Errorf("lua %s returned %s, want table", fn, result.Type())
	}

	return BehaviorDecision{
		DX: float64(lua.LVAsNumber(rt.RawGetString("dx"))),
		DY: float64(lua.LVAsNumber(rt.RawGetString("dy"))),
	}, nil
}
