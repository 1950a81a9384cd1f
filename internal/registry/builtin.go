package registry

import "github.com/vovakirdan/tui-snake/internal/config"

// DefaultVariant is used when no variant is requested.
const DefaultVariant = "classic"

func init() {
	Register(Variant{
		ID:          DefaultVariant,
		Title:       "Classic",
		Description: "Loaded configuration as is",
	})

	Register(Variant{
		ID:          "speedup",
		Title:       "Speed Up",
		Description: "Every target eaten makes the snake a little faster",
		Tweak: func(cfg *config.Config) {
			cfg.SpeedUp.Enabled = true
		},
	})

	Register(Variant{
		ID:          "tiny",
		Title:       "Tiny",
		Description: "10x10 board",
		Tweak: func(cfg *config.Config) {
			cfg.Grid.Width = 10 * cfg.Grid.CellSize
			cfg.Grid.Height = 10 * cfg.Grid.CellSize
		},
	})
}
