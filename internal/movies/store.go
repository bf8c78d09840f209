package movies

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"movieshelf/internal/db"
)

// Store provides CRUD and query operations over the movies table.
type Store struct {
	db *db.DB
}

// NewStore creates a new movies store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// sortColumns whitelists client-facing sort keys. Unknown keys fall back
// to createdAt.
var sortColumns = map[string]string{
	"title":     "title",
	"genre":     "genre",
	"rating":    "rating",
	"createdAt": "created_at",
}

// Create inserts a new movie and fills in its ID and creation time.
func (s *Store) Create(ctx context.Context, m *Movie) error {
	m.CreatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO movies (title, genre, rating, image_url, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.Title, m.Genre, m.Rating, m.ImageURL, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating movie: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted id: %w", err)
	}
	m.ID = id
	return nil
}

// Get retrieves a movie by ID. Returns sql.ErrNoRows when absent.
func (s *Store) Get(ctx context.Context, id int64) (*Movie, error) {
	m := &Movie{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, genre, rating, image_url, created_at FROM movies WHERE id = ?`, id,
	).Scan(&m.ID, &m.Title, &m.Genre, &m.Rating, &m.ImageURL, &m.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("getting movie: %w", err)
	}
	return m, nil
}

// Update replaces a movie's mutable fields. Returns sql.ErrNoRows when absent.
func (s *Store) Update(ctx context.Context, m *Movie) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE movies SET title=?, genre=?, rating=?, image_url=? WHERE id=?`,
		m.Title, m.Genre, m.Rating, m.ImageURL, m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating movie: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a movie by ID. Returns sql.ErrNoRows when absent.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting movie: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns one page of the catalog matching the given params.
// Page and PageSize are assumed to be clamped by the caller; Sort and Dir
// are normalized here against the whitelist.
func (s *Store) List(ctx context.Context, p ListParams) (*ListResult, error) {
	where := ""
	args := []any{}
	if p.Query != "" {
		where += " AND title LIKE ?"
		args = append(args, "%"+p.Query+"%")
	}
	if p.Genre != "" {
		where += " AND genre = ?"
		args = append(args, p.Genre)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM movies WHERE 1=1` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("counting movies: %w", err)
	}

	col, ok := sortColumns[p.Sort]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if p.Dir == "asc" {
		dir = "ASC"
	}

	// The id tiebreaker keeps paging stable across rows sharing a sort value.
	query := fmt.Sprintf(
		`SELECT id, title, genre, rating, image_url, created_at FROM movies WHERE 1=1%s
		 ORDER BY %s %s, id %s LIMIT ? OFFSET ?`,
		where, col, dir, dir,
	)
	args = append(args, p.PageSize, (p.Page-1)*p.PageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing movies: %w", err)
	}
	defer rows.Close()

	items := []Movie{}
	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Rating, &m.ImageURL, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning movie: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (total + p.PageSize - 1) / p.PageSize
	}

	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Stats computes catalog-wide aggregates. CurrentPageSize is left for the
// caller to fill in from the request.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{ByGenre: map[string]int{}}

	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), AVG(rating) FROM movies`,
	).Scan(&st.Total, &avg)
	if err != nil {
		return nil, fmt.Errorf("computing totals: %w", err)
	}
	st.AvgRating = math.Round(avg.Float64*100) / 100

	// Highest count first, name as tiebreaker, so topGenre is deterministic.
	rows, err := s.db.QueryContext(ctx,
		`SELECT genre, COUNT(*) AS n FROM movies GROUP BY genre ORDER BY n DESC, genre ASC`)
	if err != nil {
		return nil, fmt.Errorf("grouping by genre: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var genre string
		var n int
		if err := rows.Scan(&genre, &n); err != nil {
			return nil, fmt.Errorf("scanning genre count: %w", err)
		}
		if st.TopGenre == nil {
			g := genre
			st.TopGenre = &g
		}
		st.ByGenre[genre] = n
	}
	return st, rows.Err()
}
