package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID           = "product_id"
	Name                = "name"
	Slug                = "slug"
	Description         = "description"
	SKU                 = "sku"
	Brand               = "brand"
	PriceNumerator      = "price_numerator"
	PriceDenominator    = "price_denominator"
	OldPriceNumerator   = "old_price_numerator"
	OldPriceDenominator = "old_price_denominator"
	CategoryID          = "category_id"
	InStock             = "in_stock"
	IsActive            = "is_active"
	IsFeatured          = "is_featured"
	CreatedAt           = "created_at"
	UpdatedAt           = "updated_at"
)
