package m_order_item

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the order_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order line.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OrderID,
			LineNumber,
			ProductID,
			ProductName,
			ProductSKU,
			Quantity,
			UnitPriceNumerator,
			UnitPriceDenominator,
			TotalNumerator,
			TotalDenominator,
		},
		[]interface{}{
			data.OrderID,
			data.LineNumber,
			data.ProductID,
			data.ProductName,
			data.ProductSKU,
			data.Quantity,
			data.UnitPriceNumerator,
			data.UnitPriceDenominator,
			data.TotalNumerator,
			data.TotalDenominator,
		},
	)
}
