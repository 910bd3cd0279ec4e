package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "List, verify, and export recorded replays",
	Long: `Work with recorded replays.

Every finished game is stored as a replay: the seed, the configuration,
and the full command stream. Because gameplay is deterministic, re-running
a replay reproduces the original game exactly, which makes recorded
scores verifiable.

Examples:
  tetris replay list
  tetris replay verify 3
  tetris replay export 3 game.json`,
}

var replayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded replays",
	Args:  cobra.NoArgs,
	Run:   runReplayList,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Re-run a replay and check its recorded score",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayVerify,
}

var replayExportCmd = &cobra.Command{
	Use:   "export <id> [file]",
	Short: "Write a replay log to a JSON file (stdout if omitted)",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runReplayExport,
}

var flagReplayLimit int

func init() {
	replayListCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Maximum number of replays to list")

	replayCmd.AddCommand(replayListCmd)
	replayCmd.AddCommand(replayVerifyCmd)
	replayCmd.AddCommand(replayExportCmd)
}

func openStoreOrDie() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func parseReplayID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay ID %q\n", arg)
		os.Exit(1)
	}
	return id
}

func runReplayList(_ *cobra.Command, _ []string) {
	store := openStoreOrDie()
	defer store.Close()

	entries, err := store.RecentReplays(flagReplayLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No replays recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %-6s  %s\n", "ID", "Seed", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %-6s  %s\n", "--", "----", "-----", "-----", "----")
	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20d  %-10d  %-6d  %s\n", e.ID, e.Seed, e.Score, e.Lines, dateStr)
	}
}

func runReplayVerify(_ *cobra.Command, args []string) {
	store := openStoreOrDie()
	defer store.Close()

	id := parseReplayID(args[0])
	entry, log, err := store.ReplayByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: no replay with ID %d\n", id)
		os.Exit(1)
	}

	if err := log.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "Replay %d FAILED verification: %v\n", id, err)
		os.Exit(1)
	}

	fmt.Printf("Replay %d verified: seed %d, %d commands, score %d, %d lines\n",
		id, log.Seed, len(log.Commands), log.FinalScore, log.FinalLines)
}

func runReplayExport(_ *cobra.Command, args []string) {
	store := openStoreOrDie()
	defer store.Close()

	id := parseReplayID(args[0])
	entry, log, err := store.ReplayByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: no replay with ID %d\n", id)
		os.Exit(1)
	}

	data, err := log.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding replay: %v\n", err)
		os.Exit(1)
	}

	if len(args) < 2 {
		fmt.Println(string(data))
		return
	}

	if err := os.WriteFile(args[1], data, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", args[1], err)
		os.Exit(1)
	}
	fmt.Printf("Replay %d written to %s\n", id, args[1])
}
