package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start or restart a round
  Ctrl+S       - Save a screenshot
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Every finished round is recorded in the replay database unless
replay.enabled is false in the config.

Examples:
  snake play
  snake play --variant tiny
  snake play --mute --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fail("play needs an interactive terminal")
	}

	cfg, source, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logFile, err := openLogFile()
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		fail("%v", err)
	}
	logger.Info("starting", "config", source, "variant", flagVariant)

	opts := cfg.EngineOptions(seed())
	columns, rows := opts.Width/opts.CellSize, opts.Height/opts.CellSize
	boardW, boardH := snake.BoardSize(columns, rows)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < boardW || h < boardH+3) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, boardW, boardH+3)
	}

	var observers snake.Observers

	var lastReplay func() int64
	if cfg.Replay.Enabled {
		store, err := storage.Open(cfg.Replay.DBPath)
		if err != nil {
			// Continue without replays - the game still works
			logger.Warn("replays disabled", "err", err)
		} else {
			defer store.Close()
			rec := storage.NewRecorder(store, cfg.Scoring.Reward, logger.WithPrefix("replay"))
			observers = append(observers, rec)
			lastReplay = rec.LastID
		}
	}

	if !flagMute && cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio, logger.WithPrefix("audio"))
		if err := player.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			observers = append(observers, player)
		}
	}

	bridge := &tui.Bridge{}
	observers = append(observers, bridge)

	game, err := snake.New(opts, observers)
	if err != nil {
		fail("%v", err)
	}
	loop := snake.NewLoop(game, snake.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tui.Run(ctx, loop, bridge, game.Snapshot(), tui.Options{
		Logger:     logger,
		LastReplay: lastReplay,
	})
	if err != nil {
		logger.Error("game stopped", "err", err)
		fail("running game: %v", err)
	}
	logger.Info("bye", "score", game.Score())
}

// openLogFile opens ~/.snake/snake.log for appending. The terminal belongs
// to the UI while playing, so logs go to a file.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "snake.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
