package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/snake.schema.json
var snakeSchemaJSON string

// Default returns the built-in configuration: a 20x20 board ticking every 150ms.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:    400,
			Height:   400,
			CellSize: 20,
		},
		Timing: TimingConfig{
			TickIntervalMS: 150,
		},
		Scoring: ScoringConfig{
			Reward: 10,
		},
		SpeedUp: SpeedUpConfig{
			Enabled:       false,
			Factor:        0.97,
			MinIntervalMS: 50,
			EveryPoints:   10,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Replay: ReplayConfig{
			Enabled: true,
			DBPath:  "~/.snake/replays.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
