// File: history.go
// Title: Shell History
// Description: Records executed shell lines with their outcome. Entries are
//              kept in SQLite when a path is configured, otherwise in memory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial history stores

// Package history stores the lines entered in the interactive shell.
package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit is the number of entries kept when no limit is configured
const DefaultLimit = 1000

// Entry is one recorded shell line
type Entry struct {
	ID        string    `json:"id"`
	Line      string    `json:"line"`
	Command   string    `json:"command"`
	OK        bool      `json:"ok"`
	Timestamp time.Time `json:"timestamp"`
}

// Store persists history entries
type Store interface {
	// Append records entry, filling ID and Timestamp when empty
	Append(ctx context.Context, entry *Entry) error
	// Recent returns up to n of the newest entries, oldest first
	Recent(ctx context.Context, n int) ([]Entry, error)
	Close() error
}

// Config selects and configures a store
type Config struct {
	// Path of the SQLite database; empty keeps history in memory
	Path  string
	Limit int
}

// Open returns the store described by cfg
func Open(cfg Config) (Store, error) {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Path == "" {
		return NewMemoryStore(cfg.Limit), nil
	}
	return NewSQLiteStore(cfg)
}

func prepare(entry *Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
}

// MemoryStore keeps entries in a bounded slice
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	limit   int
}

// NewMemoryStore creates a store keeping at most limit entries
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &MemoryStore{limit: limit}
}

// Append records entry
func (s *MemoryStore) Append(ctx context.Context, entry *Entry) error {
	prepare(entry)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, *entry)
	if over := len(s.entries) - s.limit; over > 0 {
		s.entries = append([]Entry(nil), s.entries[over:]...)
	}
	return nil
}

// Recent returns up to n of the newest entries, oldest first
func (s *MemoryStore) Recent(ctx context.Context, n int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[len(s.entries)-n:])
	return out, nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
