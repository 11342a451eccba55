package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lab-arcade/internal/platform/tui"
	"github.com/vovakirdan/lab-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the lab terminal",
	Long: `Start the arcade in lab terminal mode.

Every game is locked. Type its access code anywhere in the menu to unlock
it; "ACCESS GRANTED" flashes and the game starts. Three quick clicks on the
title unlock RNA Destroyer. Leaving a game returns to the terminal and
clears the typed code; unlocked games stay in the list.

Controls:
  Letters      - Type an access code
  Up/Down/j/k  - Navigate unlocked games
  Enter        - Run the selected game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger("arcade")
	configureGames("")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be kept", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	if err := tui.RunApp(store, runtimeConfig(width, height), logger); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
