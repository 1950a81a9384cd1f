package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewBody(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Direction
		want Body
	}{
		{"right", core.DirRight, Body{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}},
		{"left", core.DirLeft, Body{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5}}},
		{"up", core.DirUp, Body{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}},
		{"down", core.DirDown, Body{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBody(core.Cell{X: 5, Y: 5}, tt.dir, 3)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewBody = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	body := Body{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}

	tests := []struct {
		name     string
		dir      core.Direction
		target   core.Cell
		want     Body
		wantStep Step
	}{
		{
			name:     "move right",
			dir:      core.DirRight,
			target:   core.Cell{X: 0, Y: 0},
			want:     Body{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}},
			wantStep: StepMoved,
		},
		{
			name:     "move up",
			dir:      core.DirUp,
			target:   core.Cell{X: 0, Y: 0},
			want:     Body{{X: 10, Y: 9}, {X: 10, Y: 10}, {X: 9, Y: 10}},
			wantStep: StepMoved,
		},
		{
			name:     "consume",
			dir:      core.DirRight,
			target:   core.Cell{X: 11, Y: 10},
			want:     Body{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
			wantStep: StepConsumed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, step := Advance(body, tt.dir, tt.target)
			if step != tt.wantStep {
				t.Errorf("step = %s, want %s", step, tt.wantStep)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("body = %v, want %v", got, tt.want)
			}
		})
	}

	if body[0] != (core.Cell{X: 10, Y: 10}) || len(body) != 3 {
		t.Errorf("Advance modified its input: %v", body)
	}
}

func TestAdvanceEmpty(t *testing.T) {
	got, step := Advance(nil, core.DirRight, core.Cell{})
	if step != StepNone || len(got) != 0 {
		t.Errorf("Advance(nil) = %v, %s", got, step)
	}
}

func TestPlaceTargetAvoidsBody(t *testing.T) {
	grid := core.MustGrid(10, 10, 1)
	body := NewBody(core.Cell{X: 5, Y: 5}, core.DirRight, 5)
	rng := rand.New(rand.NewSource(1))

	for i := range 500 {
		c, err := PlaceTarget(grid, body, rng)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if !grid.Contains(c) {
			t.Fatalf("iteration %d: %s out of bounds", i, c)
		}
		if body.Contains(c) {
			t.Fatalf("iteration %d: %s on body", i, c)
		}
	}
}

func TestPlaceTargetSingleFreeCell(t *testing.T) {
	grid := core.MustGrid(4, 2, 1)
	free := core.Cell{X: 2, Y: 1}

	var body Body
	for y := range grid.Rows() {
		for x := range grid.Columns() {
			if c := (core.Cell{X: x, Y: y}); c != free {
				body = append(body, c)
			}
		}
	}

	for seed := range int64(10) {
		c, err := PlaceTarget(grid, body, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if c != free {
			t.Fatalf("seed %d: got %s, want %s", seed, c, free)
		}
	}
}

func TestPlaceTargetExhausted(t *testing.T) {
	grid := core.MustGrid(4, 1, 1)
	body := NewBody(core.Cell{X: 3, Y: 0}, core.DirRight, 4)

	_, err := PlaceTarget(grid, body, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrTargetPlacementExhausted) {
		t.Fatalf("expected ErrTargetPlacementExhausted, got %v", err)
	}
}

func TestPlaceTargetDeterministic(t *testing.T) {
	grid := core.MustGrid(20, 20, 1)
	body := NewBody(grid.Center(), core.DirRight, 3)

	a, _ := PlaceTarget(grid, body, rand.New(rand.NewSource(42)))
	b, _ := PlaceTarget(grid, body, rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("same seed placed %s and %s", a, b)
	}
}

func TestBodyClone(t *testing.T) {
	body := Body{{X: 1, Y: 1}, {X: 0, Y: 1}}
	clone := body.Clone()
	clone[0] = core.Cell{X: 9, Y: 9}

	if body[0] != (core.Cell{X: 1, Y: 1}) {
		t.Error("Clone shares storage with the original")
	}
	if Body(nil).Clone() != nil {
		t.Error("Clone of nil body should be nil")
	}
}
