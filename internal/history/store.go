package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"hpg/internal/apply"
	"hpg/internal/fileutil"
)

const schema = `
CREATE TABLE IF NOT EXISTS applies (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    mode TEXT NOT NULL,
    conf_path TEXT NOT NULL,
    monitors INTEGER NOT NULL,
    preloads INTEGER NOT NULL,
    live_preloads INTEGER NOT NULL,
    daemon_started INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_applies_created_at ON applies(created_at);
`

// Entry is one recorded apply.
type Entry struct {
	ID            int64
	Mode          apply.Mode
	ConfPath      string
	Monitors      int
	Preloads      int
	LivePreloads  int
	DaemonStarted bool
	Duration      time.Duration
	CreatedAt     time.Time
}

// Store manages apply-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := fileutil.EnsureParentDir(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one completed apply.
func (s *Store) Record(ctx context.Context, result *apply.Result) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO applies (
            mode, conf_path, monitors, preloads, live_preloads,
            daemon_started, duration_ms, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(result.Mode),
		result.ConfPath,
		result.Monitors,
		result.Preloads,
		result.LivePreloads,
		boolToInt(result.DaemonStarted),
		result.Duration.Milliseconds(),
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert apply record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Recent returns the latest applies, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, mode, conf_path, monitors, preloads, live_preloads,
                daemon_started, duration_ms, created_at
         FROM applies ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query apply history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry      Entry
			mode       string
			started    int
			durationMS int64
			createdAt  string
		)
		if err := rows.Scan(
			&entry.ID, &mode, &entry.ConfPath, &entry.Monitors, &entry.Preloads,
			&entry.LivePreloads, &started, &durationMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan apply record: %w", err)
		}
		entry.Mode = apply.Mode(mode)
		entry.DaemonStarted = started != 0
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			entry.CreatedAt = ts
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate apply history: %w", err)
	}
	return entries, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
