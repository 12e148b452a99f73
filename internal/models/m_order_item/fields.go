package m_order_item

// Field name constants for the order_items table.
// The table is interleaved in orders and keyed by (order_id, line_number).
const (
	TableName = "order_items"

	OrderID              = "order_id"
	LineNumber           = "line_number"
	ProductID            = "product_id"
	ProductName          = "product_name"
	ProductSKU           = "product_sku"
	Quantity             = "quantity"
	UnitPriceNumerator   = "unit_price_numerator"
	UnitPriceDenominator = "unit_price_denominator"
	TotalNumerator       = "total_numerator"
	TotalDenominator     = "total_denominator"
)
