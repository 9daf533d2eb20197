// Package storage keeps finished runs in a SQLite database.
// It uses the pure-Go modernc.org/sqlite driver so builds need no CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Result is how a run ended.
type Result string

const (
	ResultGameOver Result = "game_over"
	ResultVictory  Result = "victory"
)

// sqliteTime is the layout the driver returns for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// ErrNotFound is returned when a run id matches nothing.
var ErrNotFound = errors.New("storage: run not found")

// Store owns the database handle.
type Store struct {
	db *sql.DB
}

// Run is one finished round.
type Run struct {
	ID         int64
	RunID      string
	GameID     string
	Score      int
	Bosses     int
	Result     Result
	DeathCause string
	Duration   time.Duration
	CreatedAt  time.Time
}

// Stats aggregates every run of one game.
type Stats struct {
	GameID     string
	Runs       int
	Victories  int
	HighScore  int
	AvgScore   float64
	BossKills  int
	LastPlayed time.Time
}

// Open creates or opens the database at path, expanding a leading ~ and
// creating parent directories. The schema is migrated before returning.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
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

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			bosses INTEGER NOT NULL DEFAULT 0,
			result TEXT NOT NULL,
			death_cause TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
	`)
	return err
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records r and returns its row id. RunID must be unique.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.RunID == "" {
		return 0, errors.New("storage: run id is required")
	}
	if r.Result == "" {
		r.Result = ResultGameOver
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, score, bosses, result, death_cause, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.Score, r.Bosses, string(r.Result), r.DeathCause, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get insert id: %w", err)
	}
	return id, nil
}

const runColumns = `id, run_id, game_id, score, bosses, result, death_cause, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		r         Run
		result    string
		durMS     int64
		createdAt any
	)
	if err := row.Scan(&r.ID, &r.RunID, &r.GameID, &r.Score, &r.Bosses, &result, &r.DeathCause, &durMS, &createdAt); err != nil {
		return Run{}, err
	}
	r.Result = Result(result)
	r.Duration = time.Duration(durMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// TopRuns returns the best runs for gameID, highest score first. Ties go to
// the earlier run.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE game_id = ?
		 ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

// RecentRuns returns the latest runs for gameID, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE game_id = ?
		 ORDER BY id DESC LIMIT ?`,
		gameID, limit,
	)
}

// RunByID looks up a run by its run id.
func (s *Store) RunByID(runID string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot load run %s: %w", runID, err)
	}
	return r, nil
}

// HighScore returns the best score for gameID, or 0 with no runs.
func (s *Store) HighScore(gameID string) (int, error) {
	var high sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(score) FROM runs WHERE game_id = ?`, gameID).Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get high score: %w", err)
	}
	return int(high.Int64), nil
}

// GameStats aggregates all runs of gameID.
func (s *Store) GameStats(gameID string) (Stats, error) {
	st := Stats{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(result = ?), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(SUM(bosses), 0),
		        MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		string(ResultVictory), gameID,
	).Scan(&st.Runs, &st.Victories, &st.HighScore, &st.AvgScore, &st.BossKills, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	st.LastPlayed = parseTime(last)
	return st, nil
}

// ClearRuns deletes every run of gameID.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM runs WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
