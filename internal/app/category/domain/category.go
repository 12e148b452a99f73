package domain

// Category is one node of the catalog's category hierarchy.
type Category struct {
	ID        string
	Name      string
	Slug      string
	ParentID  string // empty for root categories
	SortOrder int64
	IsActive  bool
}
