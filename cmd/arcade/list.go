package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lab-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-26s  %s\n", maxIDLen, "ID", "Title", "Code")
	fmt.Printf("  %-*s  %-26s  %s\n", maxIDLen, "--", "-----", "----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %-26s  %s\n", maxIDLen, g.ID, g.Title, g.UnlockCode)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game, or type its code in 'arcade menu'.")
}
