// Package journal records finished sessions so history survives restarts.
// The running clock itself is never persisted.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pomodoro/internal/core/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an entry does not exist.
var ErrNotFound = errors.New("not found")

// Entry is one finished session.
type Entry struct {
	ID         string
	Kind       model.SessionKind
	Planned    time.Duration
	Cycle      int
	FinishedAt time.Time
}

// Summary aggregates entries over a period.
type Summary struct {
	WorkSessions int
	ShortBreaks  int
	LongBreaks   int
	FocusTime    time.Duration
	BreakTime    time.Duration
}

// Store is a SQLite backed session journal.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record inserts an entry, assigning an ID when empty.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.FinishedAt.IsZero() {
		entry.FinishedAt = time.Now()
	}
	query := `INSERT INTO sessions (id, kind, planned_seconds, cycle, finished_at) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		string(entry.Kind),
		int64(entry.Planned/time.Second),
		entry.Cycle,
		entry.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting session entry: %w", err)
	}
	return entry, nil
}

// Get returns a single entry by ID.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	query := `SELECT id, kind, planned_seconds, cycle, finished_at FROM sessions WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	var entry Entry
	var kind, finishedAt string
	var planned int64
	if err := row.Scan(&entry.ID, &kind, &planned, &entry.Cycle, &finishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, fmt.Errorf("session entry %s: %w", id, ErrNotFound)
		}
		return Entry{}, fmt.Errorf("scanning session entry: %w", err)
	}
	return populate(entry, kind, planned, finishedAt)
}

// ListSince returns entries finished at or after since, oldest first.
func (s *Store) ListSince(ctx context.Context, since time.Time) ([]Entry, error) {
	query := `SELECT id, kind, planned_seconds, cycle, finished_at
		FROM sessions WHERE finished_at >= ? ORDER BY finished_at, rowid`
	rows, err := s.db.QueryContext(ctx, query, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing session entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var kind, finishedAt string
		var planned int64
		if err := rows.Scan(&entry.ID, &kind, &planned, &entry.Cycle, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		populated, err := populate(entry, kind, planned, finishedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, populated)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session entries: %w", err)
	}
	return entries, nil
}

// Summarize aggregates entries finished at or after since.
func (s *Store) Summarize(ctx context.Context, since time.Time) (Summary, error) {
	entries, err := s.ListSince(ctx, since)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(entries), nil
}

// Summarize aggregates the given entries.
func Summarize(entries []Entry) Summary {
	var summary Summary
	for _, entry := range entries {
		switch entry.Kind {
		case model.SessionWork:
			summary.WorkSessions++
			summary.FocusTime += entry.Planned
		case model.SessionShortBreak:
			summary.ShortBreaks++
			summary.BreakTime += entry.Planned
		case model.SessionLongBreak:
			summary.LongBreaks++
			summary.BreakTime += entry.Planned
		}
	}
	return summary
}

func populate(entry Entry, kind string, plannedSeconds int64, finishedAt string) (Entry, error) {
	parsed, err := time.Parse(time.RFC3339, finishedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing finished_at: %w", err)
	}
	entry.Kind = model.SessionKind(kind)
	entry.Planned = time.Duration(plannedSeconds) * time.Second
	entry.FinishedAt = parsed
	return entry, nil
}
