package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/invaders"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best finished battles and the persisted hi-score.

Examples:
  invaders scores
  invaders scores --limit 25
  invaders scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	if a.store == nil {
		return errors.New("scores database unavailable")
	}

	out := cmd.OutOrStdout()

	if flagClear {
		if err := a.store.ClearScores(invaders.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Score history cleared.")
		return nil
	}

	scores, err := a.store.TopScores(invaders.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Alien Invasion")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Run '%s play' to set the first high score!\n", os.Args[0])
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Fprintln(out)
	if stats, err := a.store.GetGameStats(invaders.GameID); err == nil {
		fmt.Fprintf(out, "Games: %d  Best: %d  Best level: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
	}
	fmt.Fprintf(out, "Hi-score record: %d\n", a.hiScore())
	return nil
}
