package mcp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"movieshelf/internal/movies"
)

// handleSearchMovies lists catalog entries matching a title substring and/or genre.
func (s *Server) handleSearchMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	result, err := s.store.List(ctx, movies.ListParams{
		Page:     1,
		PageSize: limit,
		Query:    request.GetString("query", ""),
		Genre:    request.GetString("genre", ""),
		Sort:     "title",
		Dir:      "asc",
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(result.Items) == 0 {
		return mcp.NewToolResultText("No movies match."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d matching movies:\n", len(result.Items), result.Total)
	for _, m := range result.Items {
		fmt.Fprintf(&b, "- #%d %s (%s, %d/10)\n", m.ID, m.Title, m.Genre, m.Rating)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetMovie returns a single movie by ID.
func (s *Server) handleGetMovie(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetInt("id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	m, err := s.store.Get(ctx, int64(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mcp.NewToolResultError(fmt.Sprintf("no movie with id %d", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"#%d %s\nGenre: %s\nRating: %d/10\nImage: %s\nAdded: %s\n",
		m.ID, m.Title, m.Genre, m.Rating, m.ImageURL, m.CreatedAt.Format("2006-01-02"),
	)), nil
}

// handleGetStats returns catalog-wide aggregates.
func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := s.store.Stats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stats failed: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total movies: %d\nAverage rating: %.2f\n", st.Total, st.AvgRating)
	if st.TopGenre != nil {
		fmt.Fprintf(&b, "Top genre: %s\n", *st.TopGenre)
	}

	genres := make([]string, 0, len(st.ByGenre))
	for g := range st.ByGenre {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	for _, g := range genres {
		fmt.Fprintf(&b, "- %s: %d\n", g, st.ByGenre[g])
	}
	return mcp.NewToolResultText(b.String()), nil
}
