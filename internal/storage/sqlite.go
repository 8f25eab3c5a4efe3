// Package storage provides SQLite-based persistence for finished game
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished (or abandoned) play of a puzzle.
type ResultEntry struct {
	ID           int64
	PuzzleID     string
	Mistakes     int
	DurationSecs int
	Solved       bool
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			mistakes INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			solved INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_puzzle_id ON results(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(puzzle_id, solved, mistakes, duration_secs);
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

// SaveResult records a finished play. Returns the ID of the inserted
// record.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (puzzle_id, mistakes, duration_secs, solved) VALUES (?, ?, ?, ?)",
		e.PuzzleID, e.Mistakes, e.DurationSecs, e.Solved,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results for the given puzzle,
// newest first.
func (s *Store) RecentResults(puzzleID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, mistakes, duration_secs, solved, created_at
		 FROM results
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// BestResult returns the best solved result for a puzzle: fewest mistakes,
// ties broken by shortest duration. Returns nil if the puzzle has never
// been solved.
func (s *Store) BestResult(puzzleID string) (*ResultEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, puzzle_id, mistakes, duration_secs, solved, created_at
		 FROM results
		 WHERE puzzle_id = ? AND solved = 1
		 ORDER BY mistakes ASC, duration_secs ASC
		 LIMIT 1`,
		puzzleID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best result: %w", err)
	}
	defer rows.Close()

	entries, err := scanResults(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// PuzzleStats contains aggregated statistics for one puzzle.
type PuzzleStats struct {
	PuzzleID     string
	Plays        int
	Solves       int
	BestMistakes int // 0 when never solved
	AvgMistakes  float64
	LastPlayed   time.Time
}

// GetPuzzleStats retrieves aggregated statistics for a specific puzzle.
func (s *Store) GetPuzzleStats(puzzleID string) (*PuzzleStats, error) {
	stats := &PuzzleStats{PuzzleID: puzzleID}

	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(solved), 0),
		        MIN(CASE WHEN solved = 1 THEN mistakes END),
		        COALESCE(AVG(mistakes), 0)
		 FROM results WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&stats.Plays, &stats.Solves, &best, &stats.AvgMistakes)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}
	if best.Valid {
		stats.BestMistakes = int(best.Int64)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE puzzle_id = ? ORDER BY created_at DESC LIMIT 1`,
		puzzleID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseDBTime(lastPlayed)
	}

	return stats, nil
}

// ClearResults deletes all results for the given puzzle.
func (s *Store) ClearResults(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func scanResults(rows *sql.Rows) ([]ResultEntry, error) {
	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PuzzleID, &e.Mistakes, &e.DurationSecs, &e.Solved, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseDBTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseDBTime handles the driver returning either time.Time or a string.
func parseDBTime(v any) time.Time {
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
