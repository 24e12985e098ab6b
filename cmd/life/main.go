// life runs Conway's Game of Life in the terminal on a wrap-around grid
// sized to the window.
//
// Usage:
//
//	life                     - Play with a random grid
//	life play --pattern name - Play starting from a named pattern
//	life patterns            - List available seed patterns
//	life stats               - Show run history
//	life serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.life/config.yaml)
//	--rate <n>         - Initial generations per second (default: 10)
//	--fps <n>          - Frame cap, 0 = uncapped (default: 60)
//	--seed <value>     - RNG seed for reproducible random grids
//	--db <path>        - Run history database (default: ~/.life/runs.db)
//	--log-file <path>  - Log file for play mode
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigPath string
	flagRate       int
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life runs Conway's Game of Life on a grid that wraps around at every
edge, sized to your terminal. Without a subcommand it behaves like 'life play'.

Available commands:
  play      - Run a simulation (default)
  patterns  - Show all seed patterns
  stats     - View run history
  serve     - Start SSH server for remote play

Examples:
  life
  life play --pattern gosper-gun --rate 30
  life patterns
  life stats --limit 20
  life serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigPath, "config", "", "Path to config YAML (default: ~/.life/config.yaml)")
	pf.IntVar(&flagRate, "rate", 10, "Initial generations per second")
	pf.IntVar(&flagFPS, "fps", 60, "Frame cap (0 = uncapped)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to run history database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file during play")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// The root command plays too, so it takes the play flags
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
