// Package storage provides SQLite-based persistence for the leaderboard and
// round history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/akovalev/fridayfall/internal/leaderboard"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RoundResult is one archived player result from a finished round.
type RoundResult struct {
	ID        int64
	Slot      int // Original player slot (0 for P1, 1 for P2)
	Score     int
	Mode      leaderboard.Mode
	CreatedAt time.Time
}

// RoundStats contains aggregated statistics over the round history.
type RoundStats struct {
	RoundsCount int
	HighScore   int
	AvgScore    float64
	LastPlayed  time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			mode INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_rank ON leaderboard(score DESC, id ASC);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot INTEGER NOT NULL,
			score INTEGER NOT NULL,
			mode INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
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

// Load implements leaderboard.Gateway. Entries come back in rank order:
// score descending, ties in the order they were saved.
func (s *Store) Load() ([]leaderboard.Entry, error) {
	rows, err := s.db.Query(
		`SELECT name, score, mode
		 FROM leaderboard
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		leaderboard.DefaultSize,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []leaderboard.Entry
	for rows.Next() {
		var e leaderboard.Entry
		var mode int
		if err := rows.Scan(&e.Name, &e.Score, &mode); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Mode = leaderboard.Mode(mode)
		// Corrupt names degrade to a valid one rather than failing the load
		e.Name = leaderboard.SanitizeName(e.Name)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Save implements leaderboard.Gateway. The stored list is replaced in a
// single transaction; insertion order encodes tie ranking.
func (s *Store) Save(entries []leaderboard.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM leaderboard"); err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}

	for _, e := range entries {
		if _, err := tx.Exec(
			"INSERT INTO leaderboard (name, score, mode) VALUES (?, ?, ?)",
			e.Name, e.Score, int(e.Mode),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot insert entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit leaderboard: %w", err)
	}
	return nil
}

// RecordRound archives one player's final score from a finished round.
// Returns the ID of the inserted record.
func (s *Store) RecordRound(slot int, score int, mode leaderboard.Mode) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (slot, score, mode) VALUES (?, ?, ?)",
		slot, score, int(mode),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recent round results.
func (s *Store) RecentRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, slot, score, mode, created_at
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var mode int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Slot, &r.Score, &mode, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Mode = leaderboard.Mode(mode)
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats retrieves aggregated statistics over all recorded rounds.
func (s *Store) Stats() (*RoundStats, error) {
	stats := &RoundStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM rounds`,
	).Scan(&stats.RoundsCount, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store implements the leaderboard gateway boundary.
var _ leaderboard.Gateway = (*Store)(nil)
