// Package snake implements the snake simulation: movement, growth, collision
// rules, the Idle/Playing/Ended state machine and the tick loop that drives it.
// Rendering and audio live elsewhere and only observe emitted events.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	// DefaultTickInterval is the cadence of the loop when none is configured.
	DefaultTickInterval = 150 * time.Millisecond

	// DefaultReward is added to the score per consumption.
	DefaultReward = 10

	// InitialLength is the body length at the start of every round.
	InitialLength = 3

	// InitialDirection is the committed direction at the start of every round.
	InitialDirection = core.DirRight
)

// PaceFunc returns the tick interval for the given score.
// It is the hook for optional speed-up rules.
type PaceFunc func(base time.Duration, score int) time.Duration

// Options configures a Game. Width and Height are world units; they must be
// multiples of CellSize.
type Options struct {
	Width        int
	Height       int
	CellSize     int
	TickInterval time.Duration
	Reward       int
	Seed         int64    // Seed of the first round
	Pace         PaceFunc // Nil keeps the interval fixed
}

// Game owns all simulation state for one player.
// It is not safe for concurrent use except for Propose; Loop serializes the rest.
type Game struct {
	grid     core.Grid
	opts     Options
	observer Observer
	ctrl     *Controller
	seeder   *rand.Rand // Draws seeds for rounds after the first
	rng      *rand.Rand // Target placement for the current round

	phase     Phase
	round     int
	seed      int64
	tick      uint64
	body      Body
	target    core.Cell
	hasTarget bool
	dir       core.Direction
	score     int
	cause     Cause
}

// New creates a game in the Idle phase.
// Returns an error wrapping core.ErrInvalidDimensions for a bad world size.
func New(opts Options, observer Observer) (*Game, error) {
	grid, err := core.NewGrid(opts.Width, opts.Height, opts.CellSize)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.Reward <= 0 {
		opts.Reward = DefaultReward
	}
	if observer == nil {
		observer = NopObserver{}
	}

	return &Game{
		grid:     grid,
		opts:     opts,
		observer: observer,
		ctrl:     NewController(InitialDirection),
		seeder:   rand.New(rand.NewSource(opts.Seed)),
		phase:    PhaseIdle,
		dir:      InitialDirection,
	}, nil
}

// Grid returns the grid the game runs on.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Start begins a new round. Valid from Idle or Ended; an Ended game passes
// through Idle first. Returns false when a round is already running.
func (g *Game) Start() bool {
	switch g.phase {
	case PhasePlaying:
		return false
	case PhaseEnded:
		g.Reset()
	}

	g.round++
	if g.round == 1 {
		g.seed = g.opts.Seed
	} else {
		g.seed = g.seeder.Int63()
	}
	g.rng = rand.New(rand.NewSource(g.seed))

	g.tick = 0
	g.score = 0
	g.cause = CauseNone
	g.dir = InitialDirection
	g.ctrl.Reset(g.dir)
	g.body = NewBody(g.grid.Center(), g.dir, InitialLength)

	target, err := PlaceTarget(g.grid, g.body, g.rng)
	g.target, g.hasTarget = target, err == nil

	g.phase = PhasePlaying
	g.observer.OnStart(g.Snapshot())
	return true
}

// Reset moves an Ended game back to Idle, discarding the round.
// Returns false from any other phase.
func (g *Game) Reset() bool {
	if g.phase != PhaseEnded {
		return false
	}

	g.phase = PhaseIdle
	g.tick = 0
	g.score = 0
	g.cause = CauseNone
	g.body = nil
	g.hasTarget = false
	g.dir = InitialDirection
	g.ctrl.Reset(g.dir)
	return true
}

// Abort ends a running round with CauseAborted.
// Returns false when no round is running.
func (g *Game) Abort() bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.end(CauseAborted, StepNone)
	return true
}

// Propose forwards a direction change to the controller.
// Safe to call from any goroutine; it takes effect on the next tick.
func (g *Game) Propose(dir core.Direction) bool {
	return g.ctrl.Propose(dir)
}

// Tick advances the round by one step. Does nothing unless Playing.
func (g *Game) Tick() Outcome {
	if g.phase != PhasePlaying {
		return Outcome{}
	}

	g.dir = g.ctrl.Commit()
	g.tick++

	body, step := Advance(g.body, g.dir, g.target)
	if !g.hasTarget && step == StepConsumed {
		// No live target; treat the stale cell as empty.
		body, step = body[:len(body)-1], StepMoved
	}
	g.body = body

	if cause := Evaluate(g.body, g.grid); cause != CauseNone {
		return g.end(cause, step)
	}

	if step == StepConsumed {
		g.score += g.opts.Reward
		g.observer.OnScored(g.score)

		target, err := PlaceTarget(g.grid, g.body, g.rng)
		if err != nil {
			g.hasTarget = false
			return g.end(CauseBoardFull, step)
		}
		g.target = target
	}

	g.observer.OnTick(g.Snapshot())
	return Outcome{Step: step, Running: true}
}

// end moves to Ended and reports the result. Scheduling stops because the
// returned outcome is not Running.
func (g *Game) end(cause Cause, step Step) Outcome {
	g.phase = PhaseEnded
	g.cause = cause
	g.observer.OnGameOver(Result{
		Score: g.score,
		Cause: cause,
		Final: g.Snapshot(),
	})
	return Outcome{Step: step, Cause: cause}
}

// Interval returns the delay before the next tick.
func (g *Game) Interval() time.Duration {
	if g.opts.Pace != nil && g.phase == PhasePlaying {
		if d := g.opts.Pace(g.opts.TickInterval, g.score); d > 0 {
			return d
		}
	}
	return g.opts.TickInterval
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Round:     g.round,
		Seed:      g.seed,
		Tick:      g.tick,
		Phase:     g.phase,
		Columns:   g.grid.Columns(),
		Rows:      g.grid.Rows(),
		Body:      g.body.Clone(),
		Target:    g.target,
		HasTarget: g.hasTarget,
		Dir:       g.dir,
		Score:     g.score,
		Cause:     g.cause,
		Interval:  g.Interval(),
	}
}
