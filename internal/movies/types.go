package movies

import "time"

// Movie is a single catalog entry.
type Movie struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Genre     string    `json:"genre"`
	Rating    int       `json:"rating"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListParams holds the filter, sort, and paging state for a catalog listing.
type ListParams struct {
	Page     int
	PageSize int
	Query    string // case-insensitive substring match on title
	Genre    string // exact match
	Sort     string // title, genre, rating, createdAt
	Dir      string // asc or desc
}

// ListResult is the paged response envelope for a catalog listing.
type ListResult struct {
	Items      []Movie `json:"items"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

// Stats summarizes the catalog.
type Stats struct {
	Total           int            `json:"total"`
	AvgRating       float64        `json:"avgRating"`
	TopGenre        *string        `json:"topGenre"`
	ByGenre         map[string]int `json:"byGenre"`
	CurrentPageSize int            `json:"currentPageSize"`
}
