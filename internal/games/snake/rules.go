package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Cause describes why a round ended.
type Cause int

const (
	CauseNone      Cause = iota
	CauseWall            // Head left the grid
	CauseSelf            // Head ran into the body
	CauseBoardFull       // Body covers every cell, no target can be placed
	CauseAborted         // Round stopped from outside
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board_full"
	case CauseAborted:
		return "aborted"
	default:
		return "none"
	}
}

// ParseCause converts a name produced by String back into a Cause.
func ParseCause(s string) Cause {
	switch s {
	case "wall":
		return CauseWall
	case "self":
		return CauseSelf
	case "board_full":
		return CauseBoardFull
	case "aborted":
		return CauseAborted
	default:
		return CauseNone
	}
}

// IsOutOfBounds reports whether head lies outside the grid.
func IsOutOfBounds(head core.Cell, grid core.Grid) bool {
	return !grid.Contains(head)
}

// IsSelfCollision reports whether head overlaps any of the remaining segments.
func IsSelfCollision(head core.Cell, rest Body) bool {
	return rest.Contains(head)
}

// IsConsumption reports whether head sits on the target.
func IsConsumption(head, target core.Cell) bool {
	return head == target
}

// Evaluate checks a post-move body for a fatal collision.
// Walls are checked first; CauseNone means the snake survives the tick.
func Evaluate(body Body, grid core.Grid) Cause {
	if len(body) == 0 {
		return CauseNone
	}
	head := body.Head()
	if IsOutOfBounds(head, grid) {
		return CauseWall
	}
	if IsSelfCollision(head, body[1:]) {
		return CauseSelf
	}
	return CauseNone
}
