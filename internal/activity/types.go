package activity

import "time"

// Catalog mutation kinds.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Entry is a single catalog change record.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	MovieID   int64     `json:"movieId"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
}
