// Package config provides YAML-based configuration loading for the life
// simulator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all configuration for a life run.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig defines how runs start.
type SimulationConfig struct {
	Rate        int    `yaml:"rate"`         // Initial generations per second
	Seed        int64  `yaml:"seed"`         // RNG seed, 0 = time based
	Pattern     string `yaml:"pattern"`      // Seed pattern name, empty = random
	PatternsDir string `yaml:"patterns_dir"` // Extra pattern files
}

// DisplayConfig defines how frames are drawn.
type DisplayConfig struct {
	FPS         int    `yaml:"fps"`          // Frame cap, 0 = uncapped
	Alive       string `yaml:"alive"`        // Glyph for live cells
	Dead        string `yaml:"dead"`         // Glyph for dead cells
	AliveColor  string `yaml:"alive_color"`  // Foreground of live cells
	CursorColor string `yaml:"cursor_color"` // Background under the cursor
	StatusColor string `yaml:"status_color"` // Values in the status line
}

// StorageConfig defines where run history is kept.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = no log during play
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if c.Simulation.Rate < 1 {
		return fmt.Errorf("%w: simulation.rate must be at least 1, got %d", ErrInvalid, c.Simulation.Rate)
	}
	if c.Display.FPS < 0 {
		return fmt.Errorf("%w: display.fps must not be negative, got %d", ErrInvalid, c.Display.FPS)
	}
	for name, glyph := range map[string]string{"display.alive": c.Display.Alive, "display.dead": c.Display.Dead} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalid, name, glyph)
		}
	}
	colors := map[string]string{
		"display.alive_color":  c.Display.AliveColor,
		"display.cursor_color": c.Display.CursorColor,
		"display.status_color": c.Display.StatusColor,
	}
	for name, color := range colors {
		if _, ok := core.ParseColor(color); !ok {
			return fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, name, color)
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// LogLevel returns the configured log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
