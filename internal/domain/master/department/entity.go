package department

import "time"

type Department struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary is the compact department projection nested in position payloads.
type Summary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
