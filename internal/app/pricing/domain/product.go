package domain

// ProductSnapshot is the read-only view of a product the pricing engine
// consumes. The catalog owns the record; the engine never mutates it.
type ProductSnapshot struct {
	ID         string
	Name       string
	Slug       string
	SKU        string
	Brand      string
	Price      *Money
	OldPrice   *Money // nil when the product has no manual markdown
	CategoryID string // empty when uncategorized
	IsActive   bool
	InStock    bool
	IsFeatured bool
}

// HasMarkdown reports whether the product carries a manual markdown, i.e.
// a struck-through original price strictly greater than the sale price.
// An old price at or below the current price is ignored.
func (p *ProductSnapshot) HasMarkdown() bool {
	return p.OldPrice != nil && p.OldPrice.GreaterThan(p.Price)
}
