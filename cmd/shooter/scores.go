package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the game history and high scores",
	Long: `Display the best finished games and overall statistics.

Examples:
  shooter scores
  shooter scores --limit 25
  shooter scores --tui
  shooter scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game history and the high score")
	scoresCmd.MarkFlagsMutuallyExclusive("clear", "tui")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	games, err := store.TopGames(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Shooter")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %-8s  %s\n", "Rank", "Score", "Level", "Mode", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----", "----", "----")
	for i, g := range games {
		mode := g.Difficulty
		if mode == "" {
			mode = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-8s  %-8s  %s\n",
			i+1, g.Score, g.Level, mode, g.Duration.Round(time.Second), g.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(storage.DefaultHighScoreKey); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Games: %d  Average: %.0f  Max level: %d  Play time: %s\n",
			stats.GamesCount, stats.AvgScore, stats.MaxLevel, stats.PlayTime.Round(time.Second))
	}
	return nil
}
