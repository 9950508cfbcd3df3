package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ferretworks/stash-dash/internal/config"
	"github.com/ferretworks/stash-dash/internal/core"
	"github.com/ferretworks/stash-dash/internal/game"
	"github.com/ferretworks/stash-dash/internal/platform/tui"
	"github.com/ferretworks/stash-dash/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Stash Dash",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump
  P          - Pause
  D          - Debug overlay
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  stashdash play
  stashdash play --seed 42
  stashdash play --config ./my-tuning.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var rs game.RecordStore
	if store != nil {
		rs = store
	}
	runErr := tui.Run(game.New(&gameCfg, rs, nil), rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
