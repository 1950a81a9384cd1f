package snake

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Loop drives a Game on a timer. All game mutation happens on the goroutine
// running Run; Propose and RequestStart may be called from anywhere,
// including from observers.
type Loop struct {
	game   *Game
	clock  Clock
	logger *log.Logger
	starts chan struct{}
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock replaces the system clock.
func WithClock(c Clock) LoopOption {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithLogger sets the logger used for round lifecycle messages.
func WithLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a loop for game. The game must not be driven elsewhere.
func NewLoop(game *Game, opts ...LoopOption) *Loop {
	l := &Loop{
		game:   game,
		clock:  SystemClock(),
		starts: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// RequestStart asks the loop to start a round. Redundant requests collapse
// into one, and a request while Playing is ignored.
func (l *Loop) RequestStart() {
	select {
	case l.starts <- struct{}{}:
	default:
	}
}

// Propose forwards a direction change; it applies on the next tick.
func (l *Loop) Propose(dir core.Direction) bool {
	return l.game.Propose(dir)
}

// Run processes start requests and ticks until ctx is cancelled.
// Exactly one timer is armed while a round is running and none otherwise.
// A running round is aborted on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	var (
		timer Timer
		tickC <-chan time.Time
	)
	disarm := func() {
		if timer != nil {
			timer.Stop()
		}
		timer, tickC = nil, nil
	}
	arm := func() {
		timer = l.clock.NewTimer(l.game.Interval())
		tickC = timer.C()
	}
	defer disarm()

	for {
		select {
		case <-ctx.Done():
			disarm()
			if l.game.Abort() {
				l.logger.Info("round aborted", "score", l.game.Score())
			}
			return nil

		case <-l.starts:
			if !l.game.Start() {
				continue
			}
			snap := l.game.Snapshot()
			l.logger.Debug("round started", "round", snap.Round, "seed", snap.Seed, "interval", snap.Interval)
			disarm()
			arm()

		case <-tickC:
			timer, tickC = nil, nil
			out := l.game.Tick()
			if out.Running {
				arm()
				continue
			}
			l.logger.Info("round over", "score", l.game.Score(), "cause", out.Cause)
		}
	}
}
