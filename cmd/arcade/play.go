package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lab-arcade/internal/platform/tui"
	"github.com/vovakirdan/lab-arcade/internal/registry"
	"github.com/vovakirdan/lab-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game, skipping the access code.

Controls:
  Left/Right, A/D  - Move (Adaptive Walk)
  Arrows, WASD     - Steer (RNA Destroyer)
  Space            - Jump / thrust
  P                - Pause
  R, Enter         - Restart (after game over)
  Esc, B           - Leave the game
  Q, Ctrl+C        - Quit
  Mouse drag       - Swipe to steer, click to jump

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play runner
  arcade play peaks --difficulty easy
  arcade play rnase --seed 42
  arcade play runner --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger := newLogger("arcade")
	configureGames(gameID)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be kept", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(gameID, store, runtimeConfig(width, height), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
