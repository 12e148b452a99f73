package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ProductID,
			Name,
			Slug,
			Description,
			SKU,
			Brand,
			PriceNumerator,
			PriceDenominator,
			OldPriceNumerator,
			OldPriceDenominator,
			CategoryID,
			InStock,
			IsActive,
			IsFeatured,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Slug,
			data.Description,
			data.SKU,
			data.Brand,
			data.PriceNumerator,
			data.PriceDenominator,
			data.OldPriceNumerator,
			data.OldPriceDenominator,
			data.CategoryID,
			data.InStock,
			data.IsActive,
			data.IsFeatured,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific product fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProductID)
	values = append(values, productID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a product (hard delete).
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
