// arcade runs the lab minigames in the terminal.
//
// Usage:
//
//	arcade list                - List available games
//	arcade play <game>         - Play a game
//	arcade menu                - Lab terminal: type an access code to unlock games
//	arcade serve               - Start SSH server for remote play
//	arcade scores <game>       - Show high scores for a game
//	arcade simulate <game>     - Run a game headless and print its state
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn, error
//	--touch              - Use the touch particle budget
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/games/peaks"
	"github.com/vovakirdan/lab-arcade/internal/games/rnase"
	"github.com/vovakirdan/lab-arcade/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagTouch    bool

	// Per-game flags shared by play, menu and simulate
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Lab Arcade - hidden lab minigames in your terminal",
	Long: `Lab Arcade hosts three small games about evolution and RNA biology:

  runner  Fitness Landscape Runner  (code TCGCAT)
  peaks   Adaptive Walk             (code ADAPT)
  rnase   RNA Destroyer             (code RNASE)

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Lab terminal, type a code to unlock a game
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a game headless and print a snapshot

Examples:
  arcade list
  arcade play runner
  arcade menu
  arcade serve --ssh :2222
  arcade scores rnase
  arcade simulate peaks --frames 3600 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagTouch, "touch", false, "Use the smaller touch-device particle budget")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// runtimeConfig builds the shared runtime settings for a screen size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: max(flagFPS, 1),
		Seed:     flagSeed,
		Touch:    flagTouch,
	}
}

// configureGames passes --config and --difficulty to every game. A config
// file only applies to the game it was written for; the loaders fall back to
// defaults when it does not parse.
func configureGames(gameID string) {
	path := func(id string) string {
		if id == gameID {
			return flagConfig
		}
		return ""
	}
	runner.SetConfigPath(path(runner.GameID))
	runner.SetDifficultyPreset(flagDifficulty)
	peaks.SetConfigPath(path(peaks.GameID))
	peaks.SetDifficultyPreset(flagDifficulty)
	rnase.SetConfigPath(path(rnase.GameID))
	rnase.SetDifficultyPreset(flagDifficulty)
}
