// File: sqlite.go
// Title: SQLite History Store
// Description: History store backed by SQLite in WAL mode. The table is
//              trimmed to the configured limit after every append.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial SQLite store

package history

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
	"github.com/msto63/semshell/foundation/utils/filex"
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db    *sql.DB
	limit int
	mu    sync.RWMutex
}

// NewSQLiteStore opens or creates the database at cfg.Path
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}

	path, err := filex.ExpandHome(cfg.Path)
	if err != nil {
		return nil, dbError(err, "failed to resolve history path").WithDetail("path", cfg.Path)
	}
	cfg.Path = path

	if err := filex.EnsureDir(cfg.Path); err != nil {
		return nil, dbError(err, "failed to create history directory").WithDetail("path", cfg.Path)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open history database").WithDetail("path", cfg.Path)
	}

	store := &SQLiteStore{db: db, limit: cfg.Limit}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize history schema").WithDetail("path", cfg.Path)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		line TEXT NOT NULL,
		command TEXT NOT NULL,
		ok INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_command ON history(command);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Append records entry and drops the oldest rows beyond the limit
func (s *SQLiteStore) Append(ctx context.Context, entry *Entry) error {
	prepare(entry)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(err, "failed to begin history transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO history (id, line, command, ok, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Line, entry.Command, entry.OK, entry.Timestamp.UnixNano(),
	)
	if err != nil {
		return dbError(err, "failed to insert history entry")
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM history WHERE seq <= (SELECT MAX(seq) FROM history) - ?`,
		s.limit,
	)
	if err != nil {
		return dbError(err, "failed to trim history")
	}

	if err := tx.Commit(); err != nil {
		return dbError(err, "failed to commit history entry")
	}
	return nil
}

// Recent returns up to n of the newest entries, oldest first. n <= 0
// returns everything kept.
func (s *SQLiteStore) Recent(ctx context.Context, n int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		n = s.limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, line, command, ok, created_at FROM (
			SELECT seq, id, line, command, ok, created_at
			FROM history ORDER BY seq DESC LIMIT ?
		) ORDER BY seq ASC`, n)
	if err != nil {
		return nil, dbError(err, "failed to query history")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Line, &e.Command, &e.OK, &created); err != nil {
			return nil, dbError(err, "failed to scan history entry")
		}
		e.Timestamp = time.Unix(0, created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read history")
	}

	return entries, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func dbError(err error, message string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation("history")
}
