package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID           string             `spanner:"product_id"`
	Name                string             `spanner:"name"`
	Slug                string             `spanner:"slug"`
	Description         string             `spanner:"description"`
	SKU                 string             `spanner:"sku"`
	Brand               string             `spanner:"brand"`
	PriceNumerator      int64              `spanner:"price_numerator"`
	PriceDenominator    int64              `spanner:"price_denominator"`
	OldPriceNumerator   spanner.NullInt64  `spanner:"old_price_numerator"`
	OldPriceDenominator spanner.NullInt64  `spanner:"old_price_denominator"`
	CategoryID          spanner.NullString `spanner:"category_id"`
	InStock             bool               `spanner:"in_stock"`
	IsActive            bool               `spanner:"is_active"`
	IsFeatured          bool               `spanner:"is_featured"`
	CreatedAt           time.Time          `spanner:"created_at"`
	UpdatedAt           time.Time          `spanner:"updated_at"`
}
