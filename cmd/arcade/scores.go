package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lab-arcade/internal/games/peaks"
	"github.com/vovakirdan/lab-arcade/internal/games/rnase"
	"github.com/vovakirdan/lab-arcade/internal/games/runner"
	"github.com/vovakirdan/lab-arcade/internal/platform/tui"
	"github.com/vovakirdan/lab-arcade/internal/registry"
	"github.com/vovakirdan/lab-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

// bestKeys maps each game to the key its personal best is stored under.
var bestKeys = map[string]string{
	runner.GameID: runner.BestKey,
	peaks.GameID:  peaks.BestKey,
	rnase.GameID:  rnase.BestKey,
}

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top scores and the personal best for the specified game.

Examples:
  arcade scores runner
  arcade scores rnase --limit 25
  arcade scores peaks --clear
  arcade scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history (best scores are kept)")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse all games in the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI || len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared score history for %s\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-14s  %-6s  %s\n", "Rank", "Score", "Stage", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-14s  %-6s  %s\n", "----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		stage := "-"
		if entry.StageLabel != "" {
			stage = fmt.Sprintf("%s %d", strings.ToLower(entry.StageLabel), entry.Stage)
		}
		secs := int(entry.Duration.Seconds())
		fmt.Printf("  %-4d  %-10d  %-14s  %2d:%02d   %s\n", i+1, entry.Score, stage, secs/60, secs%60,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if key, ok := bestKeys[gameID]; ok {
		if best, err := store.BestScore(key); err == nil {
			fmt.Printf("Personal best: %d\n", best)
		}
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.0f  Play time: %s\n", stats.GamesCount, stats.AvgScore, stats.PlayTime.Round(time.Second))
	}
	return nil
}
