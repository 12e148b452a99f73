package contracts

import (
	"context"

	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
)

// QuoteDTO is the priced view of a product returned by queries.
type QuoteDTO struct {
	ProductID       string
	Name            string
	Slug            string
	SKU             string
	BasePrice       string // decimal string, e.g. "2499.00"
	OldPrice        *string
	FinalPrice      string
	DiscountPercent *int64
	PromotionID     *string
	PromotionName   *string
}

// ProductReader defines read access to catalog products for pricing.
type ProductReader interface {
	// GetSnapshot retrieves the pricing view of one product
	GetSnapshot(ctx context.Context, productID string) (*domain.ProductSnapshot, error)

	// ListByCategories retrieves active products in any of the given categories
	ListByCategories(ctx context.Context, categoryIDs []string) ([]*domain.ProductSnapshot, error)
}
