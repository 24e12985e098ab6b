package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLimit   int
	flagLongest bool
	flagClear   bool
	flagBrowse  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run history",
	Long: `Display totals and the most recent runs recorded by 'life play' and
'life serve'. Only run statistics are kept, never grid contents.

Examples:
  life stats
  life stats --limit 25
  life stats --longest
  life stats --browse
  life stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	statsCmd.Flags().BoolVar(&flagLongest, "longest", false, "Order by generations instead of date")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
	statsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the history interactively")
}

func runStats(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagBrowse {
		viewport := core.DefaultViewport()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			viewport = core.Viewport{Width: w, Height: h}
		}
		if err := tui.RunHistory(store, viewport.Width, viewport.Height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	totals, err := store.Totals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	var runs []storage.Run
	if flagLongest {
		runs, err = store.LongestRuns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	printStats(os.Stdout, totals, runs, flagLongest)
}

func printStats(w io.Writer, totals storage.Totals, runs []storage.Run, longest bool) {
	title := "Recent runs"
	if longest {
		title = "Longest runs"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'life play' to start one!")
		return
	}

	fmt.Fprintf(w, "  %-16s  %-12s  %-18s  %-9s  %10s  %6s\n", "Date", "Mode", "Seed", "Size", "Gens", "Peak")
	fmt.Fprintf(w, "  %-16s  %-12s  %-18s  %-9s  %10s  %6s\n", "----", "----", "----", "----", "----", "----")

	for _, r := range runs {
		mode := r.Mode
		if r.User != "" {
			mode += ":" + r.User
		}
		fmt.Fprintf(w, "  %-16s  %-12s  %-18s  %-9s  %10d  %6d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			mode,
			r.Seeding,
			fmt.Sprintf("%dx%d", r.Cols, r.Rows),
			r.Generations,
			r.PeakPopulation,
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d runs, %d generations in %s. Longest: %d generations.\n",
		totals.Runs, totals.Generations, totals.Duration.Round(time.Second), totals.MostGenerations)
}
