package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ReplaySaver persists a finished round. *Store implements it.
type ReplaySaver interface {
	SaveReplay(rec ReplayRecord) (int64, error)
}

var _ ReplaySaver = (*Store)(nil)

// Recorder is a snake.Observer that journals every round it sees.
// A round is collected between OnStart and OnGameOver and saved on game over.
// Rounds that end before the first tick are not saved.
type Recorder struct {
	snake.NopObserver

	saver  ReplaySaver
	reward int
	logger *log.Logger

	active  bool
	rec     ReplayRecord
	lastDir core.Direction

	mu     sync.Mutex
	lastID int64
}

// NewRecorder creates a recorder saving through saver. reward is stored with
// each round so it can be replayed with the same scoring.
func NewRecorder(saver ReplaySaver, reward int, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		saver:  saver,
		reward: reward,
		logger: logger,
	}
}

// OnStart begins collecting a new round.
func (r *Recorder) OnStart(s snake.Snapshot) {
	r.active = true
	r.lastDir = s.Dir
	r.rec = ReplayRecord{
		Seed:    s.Seed,
		Columns: s.Columns,
		Rows:    s.Rows,
		Reward:  r.reward,
	}
}

// OnTick records a move whenever the committed direction changed.
func (r *Recorder) OnTick(s snake.Snapshot) {
	if !r.active {
		return
	}
	r.observe(s)
}

// OnGameOver records the fatal tick and saves the round.
func (r *Recorder) OnGameOver(res snake.Result) {
	if !r.active {
		return
	}
	r.active = false

	final := res.Final
	if final.Tick == 0 {
		return
	}
	r.observe(final)
	r.rec.Ticks = final.Tick
	r.rec.Cause = res.Cause

	id, err := r.saver.SaveReplay(r.rec)
	if err != nil {
		r.logger.Error("cannot save replay", "err", err)
		return
	}

	r.mu.Lock()
	r.lastID = id
	r.mu.Unlock()

	r.logger.Debug("replay saved", "id", id, "ticks", r.rec.Ticks, "moves", len(r.rec.Moves))
}

// LastID returns the id of the most recently saved round, or 0.
// Safe to call from any goroutine.
func (r *Recorder) LastID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastID
}

func (r *Recorder) observe(s snake.Snapshot) {
	if s.Dir == r.lastDir {
		return
	}
	r.lastDir = s.Dir
	r.rec.Moves = append(r.rec.Moves, Move{Tick: s.Tick, Dir: s.Dir.String()})
}
