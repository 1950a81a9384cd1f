// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidDimensions is returned when the world size does not fit the cell size.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// MinColumns is the narrowest grid that can hold the initial three-segment body.
const MinColumns = 4

// Cell is a position in grid units (not pixels).
type Cell struct {
	X, Y int
}

// Add returns the cell offset by the given vector.
func (c Cell) Add(v Cell) Cell {
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

// String returns "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid describes the discrete coordinate space the snake moves on.
type Grid struct {
	columns  int
	rows     int
	cellSize int
}

// NewGrid derives grid bounds from world dimensions and a fixed cell size.
// Width and height must be positive multiples of cellSize.
func NewGrid(width, height, cellSize int) (Grid, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d with cell size %d must be positive",
			ErrInvalidDimensions, width, height, cellSize)
	}
	if width%cellSize != 0 || height%cellSize != 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d is not a multiple of cell size %d",
			ErrInvalidDimensions, width, height, cellSize)
	}

	g := Grid{
		columns:  width / cellSize,
		rows:     height / cellSize,
		cellSize: cellSize,
	}
	if g.columns < MinColumns {
		return Grid{}, fmt.Errorf("%w: %d columns, need at least %d",
			ErrInvalidDimensions, g.columns, MinColumns)
	}
	return g, nil
}

// MustGrid is like NewGrid but panics on error. Intended for tests and constants.
func MustGrid(width, height, cellSize int) Grid {
	g, err := NewGrid(width, height, cellSize)
	if err != nil {
		panic(err)
	}
	return g
}

// Columns returns the grid width in cells.
func (g Grid) Columns() int {
	return g.columns
}

// Rows returns the grid height in cells.
func (g Grid) Rows() int {
	return g.rows
}

// CellSize returns the size of one cell in world units.
func (g Grid) CellSize() int {
	return g.cellSize
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.columns * g.rows
}

// Contains returns true if c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.columns && c.Y >= 0 && c.Y < g.rows
}

// Center returns the center cell, rounding down.
func (g Grid) Center() Cell {
	return Cell{X: g.columns / 2, Y: g.rows / 2}
}

// RandomCell returns a uniformly distributed cell within bounds.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{
		X: rng.Intn(g.columns),
		Y: rng.Intn(g.rows),
	}
}
