package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrTargetPlacementExhausted is returned when the body covers every cell.
var ErrTargetPlacementExhausted = errors.New("snake: no free cell for target")

// placementAttemptsPerCell bounds rejection sampling before falling back to
// enumerating the free cells.
const placementAttemptsPerCell = 4

// Body is the ordered list of occupied cells. Head at index 0.
type Body []core.Cell

// NewBody builds a straight body of the given length with its head at head,
// trailing opposite to dir.
func NewBody(head core.Cell, dir core.Direction, length int) Body {
	back := dir.Opposite().Vector()
	body := make(Body, 0, length)
	seg := head
	for range length {
		body = append(body, seg)
		seg = seg.Add(back)
	}
	return body
}

// Head returns the first segment.
func (b Body) Head() core.Cell {
	return b[0]
}

// Contains checks if any segment occupies c.
func (b Body) Contains(c core.Cell) bool {
	for _, seg := range b {
		if seg == c {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (b Body) Clone() Body {
	if b == nil {
		return nil
	}
	out := make(Body, len(b))
	copy(out, b)
	return out
}

// Step is the movement result of one advance.
type Step int

const (
	StepNone Step = iota
	StepMoved
	StepConsumed
)

func (s Step) String() string {
	switch s {
	case StepMoved:
		return "moved"
	case StepConsumed:
		return "consumed"
	default:
		return "none"
	}
}

// Advance moves the body one cell in dir and returns the new body.
// The input slice is never modified. On consumption the extra segment is kept
// and the caller must relocate the target; otherwise the tail is dropped.
func Advance(body Body, dir core.Direction, target core.Cell) (Body, Step) {
	if len(body) == 0 {
		return body, StepNone
	}

	head := body.Head().Add(dir.Vector())

	next := make(Body, 0, len(body)+1)
	next = append(next, head)
	next = append(next, body...)

	if IsConsumption(head, target) {
		return next, StepConsumed
	}
	return next[:len(next)-1], StepMoved
}

// PlaceTarget picks a cell not occupied by the body.
// Candidates are drawn from rng and retested; after a bounded number of misses
// the remaining free cells are enumerated and one is picked uniformly, so the
// call always terminates.
func PlaceTarget(grid core.Grid, body Body, rng *rand.Rand) (core.Cell, error) {
	occupied := make(map[core.Cell]bool, len(body))
	for _, seg := range body {
		if grid.Contains(seg) {
			occupied[seg] = true
		}
	}

	free := grid.Cells() - len(occupied)
	if free <= 0 {
		return core.Cell{}, ErrTargetPlacementExhausted
	}

	for range grid.Cells() * placementAttemptsPerCell {
		c := grid.RandomCell(rng)
		if !occupied[c] {
			return c, nil
		}
	}

	cells := make([]core.Cell, 0, free)
	for y := range grid.Rows() {
		for x := range grid.Columns() {
			c := core.Cell{X: x, Y: y}
			if !occupied[c] {
				cells = append(cells, c)
			}
		}
	}
	return cells[rng.Intn(len(cells))], nil
}
