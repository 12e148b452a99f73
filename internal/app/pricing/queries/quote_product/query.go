package quote_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/clock"
)

// Query resolves the effective price of a single product.
type Query struct {
	products   contracts.ProductReader
	promotions contracts.PromotionRepository
	calculator *domain.Calculator
	clock      clock.Clock
}

// NewQuery creates a new quote product query.
func NewQuery(
	products contracts.ProductReader,
	promotions contracts.PromotionRepository,
	clock clock.Clock,
) *Query {
	return &Query{
		products:   products,
		promotions: promotions,
		calculator: domain.NewCalculator(),
		clock:      clock,
	}
}

// Execute quotes the product at the current instant.
func (q *Query) Execute(ctx context.Context, productID string) (*contracts.QuoteDTO, error) {
	snapshot, err := q.products.GetSnapshot(ctx, productID)
	if err != nil {
		return nil, err
	}

	promotions, err := q.promotions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load promotions: %w", err)
	}

	quote := q.calculator.QuoteFor(snapshot, promotions, q.clock.Now())
	return BuildDTO(snapshot, quote), nil
}

// BuildDTO maps a snapshot and its quote to the transfer object.
func BuildDTO(snapshot *domain.ProductSnapshot, quote *domain.Quote) *contracts.QuoteDTO {
	dto := &contracts.QuoteDTO{
		ProductID:       snapshot.ID,
		Name:            snapshot.Name,
		Slug:            snapshot.Slug,
		SKU:             snapshot.SKU,
		BasePrice:       snapshot.Price.String(),
		FinalPrice:      quote.FinalPrice.String(),
		DiscountPercent: quote.DiscountPercent,
	}

	if snapshot.OldPrice != nil {
		oldPrice := snapshot.OldPrice.String()
		dto.OldPrice = &oldPrice
	}

	if quote.Promotion != nil {
		promoID := quote.Promotion.ID()
		promoName := quote.Promotion.Name()
		dto.PromotionID = &promoID
		dto.PromotionName = &promoName
	}

	return dto
}
