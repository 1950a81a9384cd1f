// snake is a terminal snake game.
//
// Usage:
//
//	snake play               - Play in the terminal
//	snake variants           - List game variants
//	snake config             - Print the effective configuration
//	snake replays            - List recorded rounds
//	snake replay <id>        - Re-simulate a recorded round
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.snake/configs, ./configs)
//	--variant <id>      - Variant applied on top of the config (default: classic)
//	--seed <value>      - RNG seed for the first round (0 = time based)
//	--log-level <lvl>   - debug, info, warn or error
//	--db <path>         - Replay database (default: from config)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	// Global flags
	flagConfig   string
	flagVariant  string
	flagSeed     int64
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the target, grow,
and avoid the walls and your own tail.

Available commands:
  play      - Play in the terminal
  variants  - Show all game variants
  config    - Print the effective configuration
  replays   - List recorded rounds
  replay    - Re-simulate a recorded round

Examples:
  snake play
  snake play --variant speedup
  snake play --seed 42
  snake config --variant tiny
  snake replay 3 --board`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", registry.DefaultVariant, "Game variant")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to replay database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "snake",
		Level:           level,
	}), nil
}

// loadConfig loads the configuration, applies the variant and flag overrides.
// Returns the config and the source it was loaded from.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	cfg, err = registry.Apply(flagVariant, cfg)
	if err != nil {
		return cfg, "", err
	}

	if flagDBPath != "" {
		cfg.Replay.DBPath = flagDBPath
	}
	return cfg, source, nil
}

// seed returns the --seed flag or a time-based seed.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
