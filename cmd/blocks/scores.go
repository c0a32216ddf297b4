package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagBoard bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs",
	Long: `Display the best runs of a mode, or a summary of every mode.

Examples:
  blocks scores
  blocks scores blocks_classic
  blocks scores --board
  blocks scores blocks --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the mode")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available modes.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs of %s.\n", gameID)
		return
	}

	printRuns(store, gameID)
}

func printRuns(store *storage.Store, gameID string) {
	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := gameID
	for _, m := range registry.List() {
		if m.ID == gameID {
			title = m.Title
		}
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blocks play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %s\n",
			i+1, r.Score, r.Lines, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Avg: %.0f  Lines: %d  Best level: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines, stats.BestLevel)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-16s  %-6s  %-8s  %s\n", "Mode", "Games", "Best", "Last played")
	fmt.Printf("  %-16s  %-6s  %-8s  %s\n", "----", "-----", "----", "-----------")
	for _, m := range registry.List() {
		s, ok := all[m.ID]
		if !ok {
			fmt.Printf("  %-16s  %-6d  %-8d  %s\n", m.ID, 0, 0, "-")
			continue
		}
		fmt.Printf("  %-16s  %-6d  %-8d  %s\n",
			m.ID, s.GamesCount, s.HighScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
