package storage

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Replay re-simulates a recorded round and returns how it ended.
// Each move is proposed just before its tick, exactly where the live
// controller committed it.
func Replay(rec ReplayRecord) (snake.Result, error) {
	var (
		result snake.Result
		ended  bool
	)
	observer := snake.ObserverFuncs{
		GameOver: func(r snake.Result) {
			result = r
			ended = true
		},
	}

	g, err := snake.New(snake.Options{
		Width:    rec.Columns,
		Height:   rec.Rows,
		CellSize: 1,
		Reward:   rec.Reward,
		Seed:     rec.Seed,
	}, observer)
	if err != nil {
		return snake.Result{}, fmt.Errorf("storage: replay %d: %w", rec.ID, err)
	}

	g.Start()

	next := 0
	for tick := uint64(1); tick <= rec.Ticks && !ended; tick++ {
		for next < len(rec.Moves) && rec.Moves[next].Tick <= tick {
			dir, ok := core.ParseDirection(rec.Moves[next].Dir)
			if !ok {
				return snake.Result{}, fmt.Errorf("storage: replay %d: bad direction %q at tick %d",
					rec.ID, rec.Moves[next].Dir, rec.Moves[next].Tick)
			}
			g.Propose(dir)
			next++
		}
		g.Tick()
	}

	if !ended {
		g.Abort()
	}
	return result, nil
}
