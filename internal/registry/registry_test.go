package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestBuiltinVariants(t *testing.T) {
	list := List()

	want := []string{"classic", "speedup", "tiny"}
	if len(list) != len(want) {
		t.Fatalf("List() returned %d variants, want %d", len(list), len(want))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("List()[%d] = %q, want %q", i, list[i].ID, id)
		}
		if list[i].Title == "" {
			t.Errorf("variant %q has no title", id)
		}
	}
}

func TestApply(t *testing.T) {
	base := config.Default()

	tests := []struct {
		id    string
		check func(t *testing.T, cfg config.Config)
	}{
		{"classic", func(t *testing.T, cfg config.Config) {
			if cfg != base {
				t.Error("classic changed the configuration")
			}
		}},
		{"speedup", func(t *testing.T, cfg config.Config) {
			if !cfg.SpeedUp.Enabled {
				t.Error("speed curve not enabled")
			}
		}},
		{"tiny", func(t *testing.T, cfg config.Config) {
			if cfg.Grid.Width/cfg.Grid.CellSize != 10 || cfg.Grid.Height/cfg.Grid.CellSize != 10 {
				t.Errorf("grid = %+v, want 10x10 cells", cfg.Grid)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cfg, err := Apply(tt.id, base)
			if err != nil {
				t.Fatalf("Apply(%q) failed: %v", tt.id, err)
			}
			tt.check(t, cfg)
		})
	}

	if base != config.Default() {
		t.Error("Apply modified the caller's configuration")
	}
}

func TestApplyUnknown(t *testing.T) {
	if Exists("nope") {
		t.Fatal("Exists(nope) = true")
	}
	_, err := Apply("nope", config.Default())
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Apply(nope) = %v, want ErrUnknownVariant", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(Variant{ID: DefaultVariant})
}
