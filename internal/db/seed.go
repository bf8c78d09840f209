package db

import (
	"context"
	"fmt"
	"time"
)

// seedGenres is the genre rotation used for placeholder movies.
var seedGenres = []string{
	"Action", "Comedy", "Drama", "Horror",
	"Sci-Fi", "Romance", "Thriller", "Animation",
}

// SeedIfEmpty inserts placeholder movies until the catalog holds at least
// min rows. It returns the number of rows inserted. The optional progress
// callback is invoked after each insert.
func (d *DB) SeedIfEmpty(ctx context.Context, min int, progress func(done, total int)) (int, error) {
	var count int
	if err := d.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting movies: %w", err)
	}
	if count >= min {
		return 0, nil
	}

	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	total := min - count
	now := time.Now().UTC()
	for i := 1; i <= total; i++ {
		n := count + i
		_, err := tx.ExecContext(ctx,
			`INSERT INTO movies (title, genre, rating, image_url, created_at) VALUES (?, ?, ?, ?, ?)`,
			fmt.Sprintf("Movie %d", n),
			seedGenres[(n-1)%len(seedGenres)],
			(n-1)%10+1,
			fmt.Sprintf("https://via.placeholder.com/300x200.png?text=Movie+%d", n),
			now,
		)
		if err != nil {
			return 0, fmt.Errorf("seeding movie %d: %w", n, err)
		}
		if progress != nil {
			progress(i, total)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed: %w", err)
	}
	return total, nil
}
