package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Loop    LoopConfig    `toml:"loop"`
	Logging LoggingConfig `toml:"logging"`
	Data    DataConfig    `toml:"data"`
	Spawn   SpawnConfig   `toml:"spawn"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Cols       int    `toml:"cols"`
	Rows       int    `toml:"rows"`
	Fullscreen bool   `toml:"fullscreen"` // use the whole terminal instead of cols x rows
}

type LoopConfig struct {
	FPS int `toml:"fps"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // log sink; empty means stderr
}

type DataConfig struct {
	Archetypes string `toml:"archetypes"` // YAML manifest; empty means built-in archetypes
	Scripts    string `toml:"scripts"`    // Lua behavior dir; empty means no scripts
}

type SpawnConfig struct {
	Population int   `toml:"population"` // 0 means the manifest counts
	Seed       int64 `toml:"seed"`       // 0 means seed from the clock
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title: "thicket",
			Cols:  80,
			Rows:  24,
		},
		Loop: LoopConfig{
			FPS: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "thicket.log",
		},
		Data: DataConfig{
			Archetypes: "",
			Scripts:    "",
		},
		Spawn: SpawnConfig{
			Population: 0,
			Seed:       0,
		},
	}
}
