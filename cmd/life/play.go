package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagPattern string
	flagEmpty   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a simulation",
	Long: `Run Conway's Game of Life in the terminal. The grid fills the window
(minus two status rows) and wraps around at every edge.

Controls:
  Space          - Pause / resume
  Arrows, hjkl   - Move cursor (visible while paused)
  S / Enter      - Toggle cell under cursor (while paused)
  N / .          - Advance one generation (while paused)
  + / =  and  -  - Faster / slower
  0              - Reset speed
  R              - Reset grid
  Q / Ctrl+C     - Quit

Examples:
  life play
  life play --seed 42
  life play --pattern glider --rate 20
  life play --empty`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPattern, "pattern", "", "Start from a named pattern (see 'life patterns')")
	cmd.Flags().BoolVar(&flagEmpty, "empty", false, "Start from an empty grid")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := fileLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	loadPatterns(cfg, logger)

	seed, err := seedFunc(cfg, flagEmpty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'life patterns' to see available patterns.")
		os.Exit(1)
	}

	theme, err := tui.NewTheme(cfg.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size is read once; the grid never resizes
	viewport := core.DefaultViewport()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		viewport = core.Viewport{Width: w, Height: h}
	}
	rows, cols := viewport.GridSize(tui.HUDRows)

	// Open run history
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - simulation still works
		store = nil
	}

	seeder, seeding := seed()
	logger.Info("run started", "rows", rows, "cols", cols, "seeding", seeding, "rate", cfg.Simulation.Rate)

	started := time.Now()
	summary, runErr := tui.Run(tui.Options{
		Rows:          rows,
		Cols:          cols,
		Rate:          cfg.Simulation.Rate,
		Seeder:        seeder,
		FrameInterval: tui.FrameInterval(cfg.Display.FPS),
		Theme:         theme,
		Logger:        logger,
	})
	elapsed := time.Since(started)

	logger.Info("run ended", "generations", summary.Generations, "peak", summary.PeakPopulation, "error", runErr)

	if store != nil {
		_, saveErr := store.SaveRun(storage.Run{
			Mode:            storage.ModeLocal,
			Rows:            summary.Height,
			Cols:            summary.Width,
			Seeding:         seeding,
			Generations:     int64(summary.Generations),
			PeakPopulation:  summary.PeakPopulation,
			FinalPopulation: summary.Population,
			Duration:        elapsed,
		})
		if saveErr != nil {
			logger.Warn("could not save run", "error", saveErr)
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}

	fmt.Printf("%d generations in %s, final population %d (peak %d)\n",
		summary.Generations, elapsed.Round(time.Second), summary.Population, summary.PeakPopulation)
}
