package storage

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type memorySaver struct {
	saved []ReplayRecord
	err   error
}

func (m *memorySaver) SaveReplay(rec ReplayRecord) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.saved = append(m.saved, rec)
	return int64(len(m.saved)), nil
}

// playRandom plays one round with random input until it ends or maxTicks
// is reached, then aborts it.
func playRandom(t *testing.T, g *snake.Game, seed int64, maxTicks uint64) {
	t.Helper()
	inputs := rand.New(rand.NewSource(seed))
	g.Start()
	for g.Phase() == snake.PhasePlaying && g.Snapshot().Tick < maxTicks {
		if inputs.Intn(4) == 0 {
			g.Propose(core.Direction(inputs.Intn(4)))
		}
		g.Tick()
	}
	g.Abort()
}

func TestRecorderCapturesDirectionChanges(t *testing.T) {
	saver := &memorySaver{}
	rec := NewRecorder(saver, 10, nil)

	g, err := snake.New(snake.Options{Width: 20, Height: 20, CellSize: 1, Seed: 3}, rec)
	if err != nil {
		t.Fatal(err)
	}
	g.Start()
	g.Propose(core.DirUp)
	g.Tick()
	g.Tick()
	g.Propose(core.DirLeft)
	g.Tick()
	g.Abort()

	if len(saver.saved) != 1 {
		t.Fatalf("saved %d rounds, want 1", len(saver.saved))
	}
	got := saver.saved[0]
	want := []Move{{Tick: 1, Dir: "up"}, {Tick: 3, Dir: "left"}}
	if !reflect.DeepEqual(got.Moves, want) {
		t.Errorf("Moves = %v, want %v", got.Moves, want)
	}
	if got.Ticks != 3 || got.Cause != snake.CauseAborted || got.Seed != 3 || got.Reward != 10 {
		t.Errorf("record = %+v", got)
	}
	if rec.LastID() != 1 {
		t.Errorf("LastID = %d, want 1", rec.LastID())
	}
}

func TestRecorderCapturesFatalTurn(t *testing.T) {
	saver := &memorySaver{}
	rec := NewRecorder(saver, 10, nil)

	// 4x4 board, head at (2,2). Up twice reaches row 0, a third Up leaves it.
	g, err := snake.New(snake.Options{Width: 4, Height: 4, CellSize: 1, Seed: 1}, rec)
	if err != nil {
		t.Fatal(err)
	}
	g.Start()
	g.Propose(core.DirUp)
	for g.Phase() == snake.PhasePlaying {
		g.Tick()
	}

	got := saver.saved[0]
	if got.Cause != snake.CauseWall {
		t.Fatalf("cause = %s, want wall", got.Cause)
	}
	if len(got.Moves) != 1 || got.Moves[0] != (Move{Tick: 1, Dir: "up"}) {
		t.Errorf("Moves = %v", got.Moves)
	}
}

func TestRecorderSkipsEmptyRounds(t *testing.T) {
	saver := &memorySaver{}
	g, err := snake.New(snake.Options{Width: 20, Height: 20, CellSize: 1}, NewRecorder(saver, 10, nil))
	if err != nil {
		t.Fatal(err)
	}
	g.Start()
	g.Abort()

	if len(saver.saved) != 0 {
		t.Errorf("saved %d rounds without ticks", len(saver.saved))
	}
}

func TestRecorderSaveError(t *testing.T) {
	saver := &memorySaver{err: errors.New("disk full")}
	rec := NewRecorder(saver, 10, nil)
	g, err := snake.New(snake.Options{Width: 20, Height: 20, CellSize: 1}, rec)
	if err != nil {
		t.Fatal(err)
	}
	g.Start()
	g.Tick()
	g.Abort()

	if rec.LastID() != 0 {
		t.Errorf("LastID = %d after failed save", rec.LastID())
	}
}

func TestReplayReproducesRound(t *testing.T) {
	store := openTestStore(t)

	for seed := range int64(10) {
		var live snake.Result
		rec := NewRecorder(store, 10, nil)
		obs := snake.Observers{rec, snake.ObserverFuncs{GameOver: func(r snake.Result) { live = r }}}

		g, err := snake.New(snake.Options{Width: 400, Height: 300, CellSize: 20, Seed: seed}, obs)
		if err != nil {
			t.Fatal(err)
		}
		playRandom(t, g, seed+100, 500)

		saved, err := store.ReplayByID(rec.LastID())
		if err != nil {
			t.Fatalf("seed %d: ReplayByID: %v", seed, err)
		}
		got, err := Replay(saved)
		if err != nil {
			t.Fatalf("seed %d: Replay: %v", seed, err)
		}

		if got.Score != live.Score || got.Cause != live.Cause {
			t.Errorf("seed %d: replay ended %d/%s, live ended %d/%s", seed, got.Score, got.Cause, live.Score, live.Cause)
		}
		if !reflect.DeepEqual(got.Final.Body, live.Final.Body) || got.Final.Tick != live.Final.Tick {
			t.Errorf("seed %d: final state differs", seed)
		}
	}
}

func TestReplaySecondRound(t *testing.T) {
	saver := &memorySaver{}
	var results []snake.Result
	obs := snake.Observers{
		NewRecorder(saver, 10, nil),
		snake.ObserverFuncs{GameOver: func(r snake.Result) { results = append(results, r) }},
	}
	g, err := snake.New(snake.Options{Width: 20, Height: 20, CellSize: 1, Seed: 8}, obs)
	if err != nil {
		t.Fatal(err)
	}

	playRandom(t, g, 1, 300)
	playRandom(t, g, 2, 300)

	if len(saver.saved) != 2 {
		t.Fatalf("saved %d rounds, want 2", len(saver.saved))
	}
	got, err := Replay(saver.saved[1])
	if err != nil {
		t.Fatal(err)
	}
	if got.Score != results[1].Score || got.Cause != results[1].Cause {
		t.Errorf("second round replay = %d/%s, live = %d/%s", got.Score, got.Cause, results[1].Score, results[1].Cause)
	}
}

func TestReplayBadDirection(t *testing.T) {
	_, err := Replay(ReplayRecord{Columns: 20, Rows: 20, Reward: 10, Ticks: 3, Moves: []Move{{Tick: 1, Dir: "sideways"}}})
	if err == nil {
		t.Error("Replay accepted an unknown direction")
	}
}
