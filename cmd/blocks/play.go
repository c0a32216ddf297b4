package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: blocks).

Controls:
  A/D, Left/Right  - Move
  S/Down           - Soft drop
  W/Up/X           - Rotate
  Space            - Hard drop
  C                - Hold
  P/Esc            - Pause
  Enter            - Start
  R                - Restart (after game over)
  B                - Back to menu (paused or game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start, speeds up every 10 lines
  normal - Medium start, speeds up every 10 lines
  hard   - Fast start, speeds up every 10 lines
  fixed  - Speed never changes

Examples:
  blocks play
  blocks play blocks_classic
  blocks play --difficulty hard
  blocks play --config ./my-rules.yaml --log ./blocks.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultMode
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	back, err := tui.Run(game, store, cfg, tui.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	if back {
		if err := menuLoop(store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
