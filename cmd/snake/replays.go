package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagBoard bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded rounds",
	Long: `List the most recently recorded rounds, newest first.

Examples:
  snake replays
  snake replays --limit 50
  snake replays --clear`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded round",
	Long: `Re-run a recorded round from its seed and moves and print the outcome.
The result is computed again by the simulation, not read from the database.

Examples:
  snake replay 3
  snake replay 3 --board`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of rounds to show")
	replaysCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
	replayCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final board")
}

// openStore opens the replay database named by the config or --db.
func openStore() *storage.Store {
	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(cfg.Replay.DBPath)
	if err != nil {
		fail("opening replay database: %v", err)
	}
	return store
}

func runReplays(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if flagClear {
		if err := store.ClearReplays(); err != nil {
			fail("clearing replays: %v", err)
		}
		fmt.Println("All replays deleted.")
		return
	}

	records, err := store.Replays(flagLimit)
	if err != nil {
		fail("retrieving replays: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-7s  %-7s  %-6s  %-10s  %s\n", "ID", "Grid", "Ticks", "Moves", "Cause", "Date")
	fmt.Printf("  %-6s  %-7s  %-7s  %-6s  %-10s  %s\n", "--", "----", "-----", "-----", "-----", "----")

	for _, rec := range records {
		grid := fmt.Sprintf("%dx%d", rec.Columns, rec.Rows)
		fmt.Printf("  %-6d  %-7s  %-7d  %-6d  %-10s  %s\n",
			rec.ID, grid, rec.Ticks, len(rec.Moves), rec.Cause, rec.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'snake replay <id>' to re-simulate a round.")
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail("invalid replay id %q", args[0])
	}

	store := openStore()
	defer store.Close()

	rec, err := store.ReplayByID(id)
	if errors.Is(err, storage.ErrReplayNotFound) {
		fail("no replay with id %d", id)
	}
	if err != nil {
		fail("loading replay: %v", err)
	}

	result, err := storage.Replay(rec)
	if err != nil {
		fail("replaying round %d: %v", id, err)
	}

	fmt.Printf("Replay #%d - %dx%d grid, seed %d\n", rec.ID, rec.Columns, rec.Rows, rec.Seed)
	fmt.Println()
	fmt.Printf("  Score:  %d\n", result.Score)
	fmt.Printf("  Length: %d\n", len(result.Final.Body))
	fmt.Printf("  Ticks:  %d\n", result.Final.Tick)
	fmt.Printf("  Cause:  %s\n", result.Cause)
	if result.Cause != rec.Cause {
		fmt.Printf("\nWarning: recorded cause was %s\n", rec.Cause)
	}

	if flagBoard {
		w, h := snake.BoardSize(rec.Columns, rec.Rows)
		screen := core.NewScreen(w, h)
		snake.Render(screen, result.Final, 0, 0)
		fmt.Println()
		fmt.Println(screen.String())
	}
}
