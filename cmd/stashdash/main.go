// stashdash is a terminal endless runner: help a squirrel hoard yarn for
// winter while dodging bushes and leaping gaps.
//
// Usage:
//
//	stashdash play           - Play the game
//	stashdash stats          - Show best runs and lifetime stats
//	stashdash serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.stashdash/stashdash.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stashdash",
	Short: "Stash Dash - an endless runner in your terminal",
	Long: `Stash Dash is a terminal endless runner. A squirrel sprints through
the forest collecting yarn for winter; bushes sting, gaps swallow, and
the world only gets faster.

Available commands:
  play     - Play the game
  stats    - View best runs and lifetime stats
  serve    - Start SSH server for remote play

Examples:
  stashdash play
  stashdash play --seed 42
  stashdash stats
  stashdash serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stashdash/stashdash.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
