package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveReplay(ReplayRecord{Seed: 1, Columns: 20, Rows: 20, Reward: 10, Ticks: 5, Cause: snake.CauseWall})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.ReplayByID(id); err != nil {
		t.Errorf("ReplayByID(%d) after reopen: %v", id, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rec := ReplayRecord{
		Seed:    -42,
		Columns: 20,
		Rows:    15,
		Reward:  10,
		Ticks:   37,
		Cause:   snake.CauseSelf,
		Moves: []Move{
			{Tick: 3, Dir: "up"},
			{Tick: 9, Dir: "left"},
			{Tick: 20, Dir: "down"},
		},
	}

	id, err := store.SaveReplay(rec)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.ReplayByID(id)
	if err != nil {
		t.Fatalf("ReplayByID() failed: %v", err)
	}

	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Seed != rec.Seed || got.Columns != rec.Columns || got.Rows != rec.Rows {
		t.Errorf("header = %+v", got)
	}
	if got.Reward != rec.Reward || got.Ticks != rec.Ticks || got.Cause != rec.Cause {
		t.Errorf("outcome = reward %d ticks %d cause %s", got.Reward, got.Ticks, got.Cause)
	}
	if !reflect.DeepEqual(got.Moves, rec.Moves) {
		t.Errorf("Moves = %v, want %v", got.Moves, rec.Moves)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreReplaysNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveReplay(ReplayRecord{Seed: int64(i), Columns: 20, Rows: 20, Reward: 10, Ticks: 1}); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	list, err := store.Replays(3)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Replays(3) returned %d records", len(list))
	}
	for i, want := range []int64{4, 3, 2} {
		if list[i].Seed != want {
			t.Errorf("list[%d].Seed = %d, want %d", i, list[i].Seed, want)
		}
	}

	if len(list[0].Moves) != 0 {
		t.Errorf("Moves = %v, want none", list[0].Moves)
	}
}

func TestStoreReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.ReplayByID(999)
	if !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("ReplayByID(999) = %v, want ErrReplayNotFound", err)
	}
}

func TestStoreClearReplays(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveReplay(ReplayRecord{Columns: 20, Rows: 20, Reward: 10, Ticks: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearReplays(); err != nil {
		t.Fatalf("ClearReplays() failed: %v", err)
	}

	list, err := store.Replays(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("%d replays left after clear", len(list))
	}
}

func TestMovesCompressed(t *testing.T) {
	moves := make([]Move, 0, 200)
	for i := range 200 {
		dir := "up"
		if i%2 == 1 {
			dir = "right"
		}
		moves = append(moves, Move{Tick: uint64(i * 3), Dir: dir})
	}

	data, err := encodeMoves(moves)
	if err != nil {
		t.Fatalf("encodeMoves() failed: %v", err)
	}
	got, err := decodeMoves(data)
	if err != nil {
		t.Fatalf("decodeMoves() failed: %v", err)
	}
	if !reflect.DeepEqual(got, moves) {
		t.Error("decoded moves differ")
	}

	if _, err := decodeMoves([]byte("not zstd")); err == nil {
		t.Error("decodeMoves accepted garbage")
	}
}
