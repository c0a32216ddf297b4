package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for high scores.
Press B after a game ends to come back to the menu.

Examples:
  blocks menu
  blocks menu --fps 30
  blocks menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	if err := menuLoop(store, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// menuLoop alternates between the picker, the scoreboard and games until
// the player quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return err
			}
			runCfg := cfg
			if runCfg.Seed == 0 {
				runCfg.Seed = time.Now().UnixNano()
			}
			back, err := tui.Run(game, store, runCfg, tui.WithLogger(logger))
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		}
	}
}
