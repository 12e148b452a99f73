package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the categories table.
type Data struct {
	CategoryID string             `spanner:"category_id"`
	Name       string             `spanner:"name"`
	Slug       string             `spanner:"slug"`
	ParentID   spanner.NullString `spanner:"parent_id"` // NULL for root categories
	SortOrder  int64              `spanner:"sort_order"`
	IsActive   bool               `spanner:"is_active"`
	CreatedAt  time.Time          `spanner:"created_at"`
}
