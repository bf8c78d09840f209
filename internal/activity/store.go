package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"movieshelf/internal/db"
)

// Store persists catalog change records.
type Store struct {
	db *db.DB
}

// NewStore creates a new activity store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Record appends a change entry for the given movie.
func (s *Store) Record(ctx context.Context, action string, movieID int64, title, detail string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity_entries (id, timestamp, action, movie_id, title, detail)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), time.Now().UTC(), action, movieID, title, detail,
	)
	if err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, action, movie_id, title, detail
		 FROM activity_entries ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Action, &e.MovieID, &e.Title, &e.Detail); err != nil {
			return nil, fmt.Errorf("scanning activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
