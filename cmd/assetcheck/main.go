// assetcheck validates a thicket config and the data files it names: the
// archetype manifest must parse, and every behavior function an archetype
// names must exist in the loaded scripts. Run it after editing data files;
// a clean exit means the game will boot without warnings.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/thicketgame/engine/internal/config"
	"github.com/thicketgame/engine/internal/data"
	"github.com/thicketgame/engine/internal/scripting"
)

func main() {
	cfgPath := flag.String("config", "thicket.toml", "config file to check")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	table := data.DefaultArchetypes()
	source := "built-in"
	if cfg.Data.Archetypes != "" {
		table, err = data.LoadArchetypes(cfg.Data.Archetypes)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		source = cfg.Data.Archetypes
	}

	engine := scripting.NewEngine(zap.NewNop())
	defer engine.Close()
	if cfg.Data.Scripts != "" {
		if err := engine.LoadDir(cfg.Data.Scripts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	var problems []string
	for _, name := range table.Names() {
		tpl := table.Get(name)
		fn := tpl.Behavior
		status := "wander"
		if fn != "" {
			status = fn
			if !engine.HasFunction(fn) {
				status = fn + " (MISSING)"
				problems = append(problems, fmt.Sprintf("archetype %q: behavior function %q not found in %s", name, fn, cfg.Data.Scripts))
			}
		}
		fmt.Printf("  %-12s %c  %-10s speed %-5.1f life %-6d count %-3d %s\n",
			name, tpl.Rune(), tpl.Color, tpl.Speed, tpl.Lifespan, tpl.Count, status)
	}

	fmt.Printf("checked %d archetypes (%s), %d scripts loaded, population %d\n",
		table.Count(), source, engine.Loaded(), table.TotalPopulation())

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, p)
		}
		os.Exit(1)
	}
}
