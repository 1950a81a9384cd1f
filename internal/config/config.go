// Package config provides YAML-based game configuration loading, schema
// validation and the optional speed curve for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Config contains all configuration for the snake game.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	SpeedUp SpeedUpConfig `yaml:"speed_up"`
	Audio   AudioConfig   `yaml:"audio"`
	Replay  ReplayConfig  `yaml:"replay"`
}

// GridConfig defines the world size. Width and Height are world units and
// must be multiples of CellSize.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// TimingConfig defines the tick cadence.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// ScoringConfig defines points awarded per consumption.
type ScoringConfig struct {
	Reward int `yaml:"reward"`
}

// SpeedUpConfig defines how the tick interval shrinks as the score grows.
type SpeedUpConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Factor        float64 `yaml:"factor"`          // Interval multiplier per step, (0, 1]
	MinIntervalMS int     `yaml:"min_interval_ms"` // Floor for the interval
	EveryPoints   int     `yaml:"every_points"`    // Score per step
}

// AudioConfig controls synthesized sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
}

// ReplayConfig controls the replay journal.
type ReplayConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// TickInterval returns the configured base interval.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// Validate checks constraints the schema cannot express.
func (c Config) Validate() error {
	if _, err := core.NewGrid(c.Grid.Width, c.Grid.Height, c.Grid.CellSize); err != nil {
		return fmt.Errorf("config: grid: %w", err)
	}
	if c.Timing.TickIntervalMS <= 0 {
		return fmt.Errorf("config: timing.tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMS)
	}
	if c.SpeedUp.Enabled && (c.SpeedUp.Factor <= 0 || c.SpeedUp.Factor > 1) {
		return fmt.Errorf("config: speed_up.factor must be in (0, 1], got %g", c.SpeedUp.Factor)
	}
	return nil
}

// EngineOptions converts the configuration into game options.
// The speed curve is attached only when enabled.
func (c Config) EngineOptions(seed int64) snake.Options {
	opts := snake.Options{
		Width:        c.Grid.Width,
		Height:       c.Grid.Height,
		CellSize:     c.Grid.CellSize,
		TickInterval: c.TickInterval(),
		Reward:       c.Scoring.Reward,
		Seed:         seed,
	}
	if curve := NewSpeedCurve(c.SpeedUp); curve.IsEnabled() {
		opts.Pace = curve.Interval
	}
	return opts
}
