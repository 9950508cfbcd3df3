package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ferretworks/stash-dash/internal/platform/tui"
	"github.com/ferretworks/stash-dash/internal/storage"
)

var flagPlain bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show best runs and lifetime stats",
	Long: `Display the top runs and lifetime totals.

By default opens an interactive scoreboard; --plain prints to stdout.

Examples:
  stashdash stats
  stashdash stats --plain`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print stats to stdout instead of the interactive view")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printStats(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
		os.Exit(1)
	}
}

func printStats(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Stash Dash")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'stashdash play' to start stashing!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %s\n", "Rank", "Stash", "Distance", "Yarn", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %s\n", "----", "-----", "--------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-10s  %-6d  %s\n",
			i+1, r.Stash, fmt.Sprintf("%dm", r.Distance), r.Yarn,
			r.PlayedAt.Format("2006-01-02 15:04"))
	}

	ls, err := store.Lifetime()
	if err == nil {
		fmt.Println()
		fmt.Printf("Lifetime: %d runs, %d yarn, %dm travelled, %s played\n",
			ls.Runs, ls.TotalYarn, ls.TotalDistance,
			time.Duration(ls.TotalSeconds)*time.Second)
	}
}
