package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID = "category_id"
	Name       = "name"
	Slug       = "slug"
	ParentID   = "parent_id"
	SortOrder  = "sort_order"
	IsActive   = "is_active"
	CreatedAt  = "created_at"
)
