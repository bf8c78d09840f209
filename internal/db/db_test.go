package db

import (
	"context"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Verify tables exist by querying each one.
	tables := []string{"movies", "activity_entries"}

	for _, table := range tables {
		var count int
		err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()
	ctx := context.Background()

	inserted, err := d.SeedIfEmpty(ctx, 30, nil)
	if err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if inserted != 30 {
		t.Fatalf("inserted = %d, want 30", inserted)
	}

	var count int
	d.QueryRow(`SELECT COUNT(*) FROM movies`).Scan(&count)
	if count != 30 {
		t.Fatalf("count = %d, want 30", count)
	}

	// Ratings cycle 1..10 and genres rotate through the fixed list.
	var rating int
	var genre string
	d.QueryRow(`SELECT rating, genre FROM movies WHERE title = 'Movie 11'`).Scan(&rating, &genre)
	if rating != 1 {
		t.Errorf("Movie 11 rating = %d, want 1", rating)
	}
	if genre != "Drama" {
		t.Errorf("Movie 11 genre = %q, want %q", genre, "Drama")
	}
}

func TestSeedIfEmptySkipsPopulated(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()
	ctx := context.Background()

	if _, err := d.SeedIfEmpty(ctx, 30, nil); err != nil {
		t.Fatalf("first SeedIfEmpty: %v", err)
	}
	inserted, err := d.SeedIfEmpty(ctx, 30, nil)
	if err != nil {
		t.Fatalf("second SeedIfEmpty: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("inserted = %d on populated catalog, want 0", inserted)
	}
}

func TestSeedProgressCallback(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var calls int
	if _, err := d.SeedIfEmpty(context.Background(), 5, func(done, total int) {
		calls++
		if total != 5 {
			t.Errorf("total = %d, want 5", total)
		}
	}); err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if calls != 5 {
		t.Fatalf("progress called %d times, want 5", calls)
	}
}
