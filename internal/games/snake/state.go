package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the game state machine position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of the game state after a transition or tick.
type Snapshot struct {
	Round     int
	Seed      int64 // Seed of the current round, enough to replay it
	Tick      uint64
	Phase     Phase
	Columns   int
	Rows      int
	Body      Body
	Target    core.Cell
	HasTarget bool
	Dir       core.Direction
	Score     int
	Cause     Cause // CauseNone until the round ends
	Interval  time.Duration
}

// Head returns the head cell, or false when there is no body.
func (s Snapshot) Head() (core.Cell, bool) {
	if len(s.Body) == 0 {
		return core.Cell{}, false
	}
	return s.Body[0], true
}

// String returns a short multi-line description, useful in logs and tests.
func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Round: %d, Tick: %d, Phase: %s, Score: %d\n", s.Round, s.Tick, s.Phase, s.Score))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", len(s.Body), s.Dir))
	if head, ok := s.Head(); ok {
		b.WriteString(fmt.Sprintf("Head: %s, Target: %s\n", head, s.Target))
	}
	return b.String()
}

// Result describes a finished round.
type Result struct {
	Score int
	Cause Cause
	Final Snapshot
}

// Won reports whether the round ended because the board was filled.
func (r Result) Won() bool {
	return r.Cause == CauseBoardFull
}

// Outcome is returned by Game.Tick.
type Outcome struct {
	Step    Step
	Cause   Cause // CauseNone while the round goes on
	Running bool  // Whether another tick should be scheduled
}
