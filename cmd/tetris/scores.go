package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores and stats for a mode, or a summary of every
mode when none is given.

Examples:
  tetris scores
  tetris scores tetris --limit 20
  tetris scores tetris --limit 0       # every recorded game
  tetris scores tetris_endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	if err := printScores(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := loadScores(store, gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Lines", "Pieces", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %-6d  %s\n",
			i+1, player, e.Score, e.Lines, e.Pieces, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.1f  Lines: %d (best %d)\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines, stats.BestLines)
	return nil
}

// loadScores returns the best limit scores, or every score when limit is
// not positive.
func loadScores(store *storage.Store, gameID string, limit int) ([]storage.ScoreEntry, error) {
	if limit > 0 {
		return store.TopScores(gameID, limit)
	}
	return store.AllScores(gameID)
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("Stats")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %-6s  %s\n", "Mode", "Games", "Best", "Average", "Lines", "Last played")
	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %-6s  %s\n", "----", "-----", "----", "-------", "-----", "-----------")
	for _, g := range registry.List() {
		s, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-16s  %-6d  %-6s  %-8s  %-6s  %s\n", g.ID, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-16s  %-6d  %-6d  %-8.1f  %-6d  %s\n",
			g.ID, s.GamesCount, s.HighScore, s.AvgScore, s.TotalLines, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
