package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Rate:        10,
			Seed:        0,
			Pattern:     "",
			PatternsDir: "~/.life/patterns",
		},
		Display: DisplayConfig{
			FPS:         60,
			Alive:       "#",
			Dead:        " ",
			AliveColor:  "default",
			CursorColor: "bright-green",
			StatusColor: "blue",
		},
		Storage: StorageConfig{
			DB: "~/.life/runs.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
