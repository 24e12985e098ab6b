package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// loadSettings reads the config file and applies explicitly set flags.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	applyFlags(&cfg, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides config values with the flags the user set.
func applyFlags(cfg *config.Config, changed func(name string) bool) {
	if changed("rate") {
		cfg.Simulation.Rate = flagRate
	}
	if changed("seed") {
		cfg.Simulation.Seed = flagSeed
	}
	if changed("pattern") {
		cfg.Simulation.Pattern = flagPattern
	}
	if changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if changed("db") {
		cfg.Storage.DB = flagDBPath
	}
	if changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

// newLogger creates a logger in the configured level.
func newLogger(cfg config.Config, w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
}

// fileLogger logs to the configured log file, or nowhere when none is set.
// The terminal belongs to the simulation while it runs.
func fileLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.Log.File == "" {
		return newLogger(cfg, io.Discard, "life"), func() {}, nil
	}

	path, err := config.ExpandHome(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(cfg, f, "life"), func() { f.Close() }, nil
}

// loadPatterns registers user patterns from the configured directory.
// Broken files are reported but never fatal.
func loadPatterns(cfg config.Config, logger *log.Logger) {
	if cfg.Simulation.PatternsDir == "" {
		return
	}
	dir, err := config.ExpandHome(cfg.Simulation.PatternsDir)
	if err != nil {
		logger.Warn("cannot resolve patterns directory", "error", err)
		return
	}
	n, err := registry.LoadDir(dir)
	if err != nil {
		logger.Warn("could not load user patterns", "dir", dir, "error", err)
	}
	if n > 0 {
		logger.Debug("loaded user patterns", "dir", dir, "count", n)
	}
}

// seedFunc resolves how new grids are filled: empty, from a registered
// pattern, or at random. Every call of the returned function starts a new run.
func seedFunc(cfg config.Config, empty bool) (tui.SeedFunc, error) {
	if empty {
		return func() (life.Seeder, string) { return life.EmptySeeder, "empty" }, nil
	}

	if name := cfg.Simulation.Pattern; name != "" {
		p, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		return func() (life.Seeder, string) { return p.Seeder(), "pattern:" + p.Name }, nil
	}

	fixed := cfg.Simulation.Seed
	return func() (life.Seeder, string) {
		seed := fixed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return life.NewRandomSeeder(seed), fmt.Sprintf("random:%d", seed)
	}, nil
}
