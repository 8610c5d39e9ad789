package data

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// ArchetypeTemplate holds the static definition of one critter kind loaded
// from YAML. Behavior names a Lua decide function; empty means the built-in
// wander.
type ArchetypeTemplate struct {
	Name     string  `yaml:"name"`
	Glyph    string  `yaml:"glyph"` // exactly one rune
	Color    string  `yaml:"color"` // tcell color name
	Speed    float64 `yaml:"speed"` // cells per second
	Lifespan int     `yaml:"lifespan_ticks"`
	Behavior string  `yaml:"behavior,omitempty"`
	Count    int     `yaml:"count"` // population the spawner maintains
}

// Rune returns the glyph as a rune. Valid templates hold exactly one.
func (t *ArchetypeTemplate) Rune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

type archetypeListFile struct {
	Archetypes []ArchetypeTemplate `yaml:"archetypes"`
}

// ArchetypeTable holds all archetypes indexed by name, preserving manifest
// order so spawning stays deterministic.
type ArchetypeTable struct {
	templates map[string]*ArchetypeTemplate
	order     []string
}

// LoadArchetypes loads and validates an archetype manifest.
func LoadArchetypes(path string) (*ArchetypeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archetypes: %w", err)
	}
	var f archetypeListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse archetypes: %w", err)
	}
	return buildTable(f.Archetypes)
}

func buildTable(templates []ArchetypeTemplate) (*ArchetypeTable, error) {
	t := &ArchetypeTable{
		templates: make(map[string]*ArchetypeTemplate, len(templates)),
		order:     make([]string, 0, len(templates)),
	}
	for i := range templates {
		tpl := &templates[i]
		if err := validate(tpl); err != nil {
			return nil, fmt.Errorf("archetype %q: %w", tpl.Name, err)
		}
		if _, dup := t.templates[tpl.Name]; dup {
			return nil, fmt.Errorf("archetype %q: duplicate name", tpl.Name)
		}
		t.templates[tpl.Name] = tpl
		t.order = append(t.order, tpl.Name)
	}
	return t, nil
}

// validate rejects manifest mistakes at load time so the draw and spawn
// paths never see them.
func validate(tpl *ArchetypeTemplate) error {
	if tpl.Name == "" {
		return fmt.Errorf("name is required")
	}
	if n := len([]rune(tpl.Glyph)); n != 1 {
		return fmt.Errorf("glyph must be exactly one rune, got %d", n)
	}
	if _, ok := tcell.ColorNames[tpl.Color]; !ok {
		return fmt.Errorf("unknown color %q", tpl.Color)
	}
	if tpl.Speed < 0 {
		return fmt.Errorf("speed must not be negative")
	}
	if tpl.Lifespan < 0 {
		return fmt.Errorf("lifespan_ticks must not be negative")
	}
	if tpl.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	return nil
}

// Get returns an archetype by name, or nil if not found.
func (t *ArchetypeTable) Get(name string) *ArchetypeTemplate {
	return t.templates[name]
}

// Names returns the archetype names in manifest order.
func (t *ArchetypeTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Count returns the number of loaded archetypes.
func (t *ArchetypeTable) Count() int {
	return len(t.templates)
}

// TotalPopulation sums the per-archetype counts.
func (t *ArchetypeTable) TotalPopulation() int {
	total := 0
	for _, tpl := range t.templates {
		total += tpl.Count
	}
	return total
}

// DefaultArchetypes is the built-in manifest used when none is configured.
func DefaultArchetypes() *ArchetypeTable {
	t, err := buildTable([]ArchetypeTemplate{
		{Name: "vole", Glyph: "v", Color: "green", Speed: 6, Lifespan: 1800, Count: 6},
		{Name: "hare", Glyph: "h", Color: "silver", Speed: 10, Lifespan: 2400, Count: 3},
		{Name: "wren", Glyph: "w", Color: "aqua", Speed: 12, Lifespan: 1500, Count: 4},
	})
	if err != nil {
		panic(fmt.Sprintf("built-in archetypes invalid: %v", err))
	}
	return t
}
