// Package storage keeps the history of finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL UNIQUE,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		lines INTEGER NOT NULL DEFAULT 0,
		level INTEGER NOT NULL DEFAULT 1,
		ticks INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC, lines DESC);
`

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunResult is the summary of one finished game.
type RunResult struct {
	RunID     string // generated by SaveRun when empty
	GameID    string
	Score     int
	Lines     int
	Level     int
	Ticks     uint64
	CreatedAt time.Time
}

// Open creates or opens the database at path, creating parent directories
// and the schema as needed. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, rest)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// parseTime accepts what the driver hands back for a DATETIME column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveRun records a finished run and returns its ID, generating one when
// the result has none. A duplicate ID is an error.
func (s *Store) SaveRun(run RunResult) (string, error) {
	if run.GameID == "" {
		return "", errors.New("storage: run has no game ID")
	}
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, score, lines, level, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.GameID, run.Score, run.Lines, run.Level, int64(run.Ticks),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.RunID, nil
}

// TopRuns returns the best runs of a mode: highest score first, more lines
// breaking ties, then the earlier run. A non-positive limit means 10.
func (s *Store) TopRuns(gameID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, game_id, score, lines, level, ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, lines DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunResult
	for rows.Next() {
		var r RunResult
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.RunID, &r.GameID, &r.Score, &r.Lines, &r.Level, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the best score of a mode, or 0 when it was never played.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE game_id = ?", gameID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// ClearRuns deletes every run of a mode.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	TotalLines int64
	BestLevel  int
	LastPlayed time.Time
}

const statsColumns = `game_id, COUNT(*), MAX(score), AVG(score), SUM(score),
	SUM(lines), MAX(level), MAX(created_at)`

func scanStats(row interface{ Scan(...any) error }) (*GameStats, error) {
	var gs GameStats
	var lastPlayed any
	err := row.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore,
		&gs.TotalScore, &gs.TotalLines, &gs.BestLevel, &lastPlayed)
	if err != nil {
		return nil, err
	}
	gs.LastPlayed = parseTime(lastPlayed)
	return &gs, nil
}

// GetGameStats returns aggregated statistics for one mode. A mode without
// runs yields zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	row := s.db.QueryRow(
		"SELECT "+statsColumns+" FROM runs WHERE game_id = ? GROUP BY game_id",
		gameID,
	)
	stats, err := scanStats(row)
	if errors.Is(err, sql.ErrNoRows) {
		return &GameStats{GameID: gameID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return stats, nil
}

// GetAllGamesStats returns statistics for every mode that has runs.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT " + statsColumns + " FROM runs GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		all[stats.GameID] = stats
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}
