package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List all seed patterns",
	Long: `Shows the built-in seed patterns and those loaded from the patterns
directory (default: ~/.life/patterns). Pattern files are YAML:

  patterns:
    - name: glider
      title: Glider
      rows:
        - ".O."
        - "..O"
        - "OOO"`,
	Args: cobra.NoArgs,
	Run:  runPatterns,
}

func runPatterns(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: user patterns not loaded: %v\n", err)
	} else {
		loadPatterns(cfg, newLogger(cfg, os.Stderr, "life"))
	}
	printPatterns(cmd.OutOrStdout(), registry.List())
}

func printPatterns(w io.Writer, patterns []registry.PatternInfo) {
	if len(patterns) == 0 {
		fmt.Fprintln(w, "No patterns available.")
		return
	}

	fmt.Fprintln(w, "Available patterns:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range patterns {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Title")
	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "-----")

	for _, p := range patterns {
		size := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxNameLen, p.Name, size, p.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'life play --pattern <name>' to start from a pattern.")
}
