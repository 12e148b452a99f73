package m_category

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the categories table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			CategoryID,
			Name,
			Slug,
			ParentID,
			SortOrder,
			IsActive,
			CreatedAt,
		},
		[]interface{}{
			data.CategoryID,
			data.Name,
			data.Slug,
			data.ParentID,
			data.SortOrder,
			data.IsActive,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a category.
func (m *Model) DeleteMut(categoryID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{categoryID})
}
