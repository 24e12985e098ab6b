package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v\nexpected %+v", cfg, Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() is invalid: %v", err)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("simulation:\n  rate: 25\ndisplay:\n  alive: \"█\"\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Simulation.Rate != 25 {
		t.Errorf("Rate = %d, expected 25", cfg.Simulation.Rate)
	}
	if cfg.Display.Alive != "█" {
		t.Errorf("Alive = %q, expected █", cfg.Display.Alive)
	}
	if cfg.Display.FPS != 60 || cfg.Storage.DB != "~/.life/runs.db" {
		t.Errorf("missing values should keep defaults, got %+v", cfg)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero rate", "simulation:\n  rate: 0\n"},
		{"negative fps", "display:\n  fps: -1\n"},
		{"long glyph", "display:\n  alive: \"##\"\n"},
		{"empty glyph", "display:\n  dead: \"\"\n"},
		{"unknown color", "display:\n  cursor_color: mauve\n"},
		{"unknown level", "log:\n  level: loud\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}

	if _, err := Parse([]byte("simulation: [")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  pattern: glider\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Simulation.Pattern != "glider" {
		t.Errorf("Pattern = %q, expected glider", cfg.Simulation.Pattern)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join("configs", "life.yaml"), []byte("simulation:\n  rate: 3\n"), 0o600)
	cfg, _ = Load("")
	if cfg.Simulation.Rate != 3 {
		t.Errorf("local config not used, rate = %d", cfg.Simulation.Rate)
	}

	// User config wins over the local one
	os.MkdirAll(filepath.Join(home, ".life"), 0o755)
	os.WriteFile(filepath.Join(home, ".life", "config.yaml"), []byte("simulation:\n  rate: 7\n"), 0o600)
	cfg, _ = Load("")
	if cfg.Simulation.Rate != 7 {
		t.Errorf("user config not used, rate = %d", cfg.Simulation.Rate)
	}

	// A broken user config falls through to the next candidate
	os.WriteFile(filepath.Join(home, ".life", "config.yaml"), []byte("simulation:\n  rate: 0\n"), 0o600)
	cfg, _ = Load("")
	if cfg.Simulation.Rate != 3 {
		t.Errorf("broken user config should be skipped, rate = %d", cfg.Simulation.Rate)
	}
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("LogLevel() = %v, expected info", cfg.LogLevel())
	}
	cfg.Log.Level = "debug"
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, expected debug", cfg.LogLevel())
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.life/runs.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".life", "runs.db") {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("absolute paths must be unchanged, got %q", got)
	}
	if got, _ := ExpandHome("~other/x"); got != "~other/x" {
		t.Errorf("~user paths are not expanded, got %q", got)
	}
}
