// Package storage provides SQLite-based persistence for recorded rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrReplayNotFound is returned when no replay has the requested id.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for the replay journal.
type Store struct {
	db *sql.DB
}

// ReplayRecord is everything needed to re-simulate one round.
// The score is not stored; replaying the moves derives it.
type ReplayRecord struct {
	ID        int64
	Seed      int64
	Columns   int
	Rows      int
	Reward    int
	Ticks     uint64 // Ticks played before the round ended
	Cause     snake.Cause
	Moves     []Move
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			grid_columns INTEGER NOT NULL,
			grid_rows INTEGER NOT NULL,
			reward INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			cause TEXT NOT NULL,
			moves BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(rec ReplayRecord) (int64, error) {
	moves, err := encodeMoves(rec.Moves)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode moves: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO replays (seed, grid_columns, grid_rows, reward, ticks, cause, moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Seed, rec.Columns, rec.Rows, rec.Reward, int64(rec.Ticks), rec.Cause.String(), moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Replays retrieves the most recent replays, newest first.
func (s *Store) Replays(limit int) ([]ReplayRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, grid_columns, grid_rows, reward, ticks, cause, moves, created_at
		 FROM replays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var records []ReplayRecord
	for rows.Next() {
		rec, err := scanReplay(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ReplayByID retrieves a single replay.
// Returns ErrReplayNotFound when the id does not exist.
func (s *Store) ReplayByID(id int64) (ReplayRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, grid_columns, grid_rows, reward, ticks, cause, moves, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	)

	rec, err := scanReplay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ReplayRecord{}, fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	return rec, err
}

// ClearReplays deletes every recorded round.
func (s *Store) ClearReplays() error {
	if _, err := s.db.Exec("DELETE FROM replays"); err != nil {
		return fmt.Errorf("storage: cannot clear replays: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReplay(row scanner) (ReplayRecord, error) {
	var (
		rec       ReplayRecord
		ticks     int64
		cause     string
		moves     []byte
		createdAt any
	)
	err := row.Scan(&rec.ID, &rec.Seed, &rec.Columns, &rec.Rows, &rec.Reward, &ticks, &cause, &moves, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, err
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	rec.Ticks = uint64(ticks)
	rec.Cause = snake.ParseCause(cause)
	if rec.Moves, err = decodeMoves(moves); err != nil {
		return rec, fmt.Errorf("storage: replay %d: cannot decode moves: %w", rec.ID, err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}

	return rec, nil
}
