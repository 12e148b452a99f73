package m_order_item

// Data represents the database model for the order_items table.
type Data struct {
	OrderID              string `spanner:"order_id"`
	LineNumber           int64  `spanner:"line_number"`
	ProductID            string `spanner:"product_id"`
	ProductName          string `spanner:"product_name"`
	ProductSKU           string `spanner:"product_sku"`
	Quantity             int64  `spanner:"quantity"`
	UnitPriceNumerator   int64  `spanner:"unit_price_numerator"`
	UnitPriceDenominator int64  `spanner:"unit_price_denominator"`
	TotalNumerator       int64  `spanner:"total_numerator"`
	TotalDenominator     int64  `spanner:"total_denominator"`
}
