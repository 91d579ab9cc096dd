package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ballpit/internal/registry"
	"github.com/vovakirdan/tui-ballpit/internal/storage"
)

var (
	flagCatches bool
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 session scores for the specified mode.

With --catches the best caught balls are shown instead, ranked by
color quality. --clear wipes the selected board.

Examples:
  ballpit scores ballpit
  ballpit scores ballpit --catches
  ballpit scores ballpit_zerog --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagCatches, "catches", false, "Show best catches instead of session scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Clear the selected board for this mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ballpit list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if flagCatches {
			if err := store.ClearCatches(gameID); err != nil {
				fmt.Fprintf(os.Stderr, "Error clearing catches: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Cleared catches for %s.\n", title)
		} else {
			if err := store.ClearScores(gameID); err != nil {
				fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Cleared scores for %s.\n", title)
		}
		return
	}

	if flagCatches {
		showCatches(store, gameID, title)
		return
	}
	showScores(store, gameID, title)
}

func showScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ballpit play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Summary
	fmt.Println()
	if stats, statsErr := store.GetGameStats(gameID); statsErr == nil && stats.GamesCount > 0 {
		fmt.Printf("Sessions: %d   Average: %.1f   Best: %d\n", stats.GamesCount, stats.AvgScore, stats.HighScore)
		if stats.CatchCount > 0 {
			fmt.Printf("Catches: %d   Best quality: %.0f%%\n", stats.CatchCount, stats.BestQuality*100)
		}
	}
}

func showCatches(store *storage.Store, gameID, title string) {
	catches, err := store.TopCatches(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving catches: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Catches - %s\n", title)
	fmt.Println()

	if len(catches) == 0 {
		fmt.Println("No catches recorded yet.")
		fmt.Println()
		fmt.Printf("Drag a ball onto the ring in 'ballpit play %s' to catch one!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-9s  %-8s  %s\n", "Rank", "Color", "Quality", "Date")
	fmt.Printf("  %-4s  %-9s  %-8s  %s\n", "----", "-----", "-------", "----")

	// Print catches
	for i, entry := range catches {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		quality := fmt.Sprintf("%.0f%%", entry.Quality*100)
		fmt.Printf("  %-4d  %-9s  %-8s  %s\n", i+1, entry.Color, quality, dateStr)
	}
}
