// tetris is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetris play              - Play in the current terminal
//	tetris scores            - Show the high-score table
//	tetris replay list       - List recorded replays
//	tetris replay verify     - Re-run a replay and check its score
//	tetris replay export     - Write a replay log to a JSON file
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game with deterministic
gameplay: the same seed and the same inputs always produce the same game,
so every finished session is recorded as a verifiable replay.

Available commands:
  play     - Play in the current terminal
  scores   - View the high-score table
  replay   - List, verify, and export recorded replays
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42
  tetris scores
  tetris replay list
  tetris serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
