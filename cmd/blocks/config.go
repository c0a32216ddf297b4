package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the effective rules as YAML",
	Long: `Print the rules a mode would play with, after the config search path,
--config and --difficulty are applied. The output is a valid rules file.

Examples:
  blocks config
  blocks config blocks_classic --difficulty fixed > ~/.blocks/configs/blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := defaultMode
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bg, ok := game.(*blocks.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q has no rules\n", gameID)
		os.Exit(1)
	}
	bg.Reset(runtimeConfig())

	if flagConfig != "" {
		// Reset falls back to defaults on a bad file; report it instead.
		if _, err := config.LoadBlocks(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	data, err := config.Marshal(bg.Config())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
