package list_category_quotes

import (
	"context"
	"fmt"

	categorycontracts "github.com/light-bringer/shop-pricing-service/internal/app/category/contracts"
	categorydomain "github.com/light-bringer/shop-pricing-service/internal/app/category/domain"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/queries/quote_product"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/clock"
)

// Query prices every active product in a category subtree: the category
// itself plus all its descendants.
type Query struct {
	categories categorycontracts.CategoryRepository
	products   contracts.ProductReader
	promotions contracts.PromotionRepository
	calculator *domain.Calculator
	clock      clock.Clock
}

// NewQuery creates a new list category quotes query.
func NewQuery(
	categories categorycontracts.CategoryRepository,
	products contracts.ProductReader,
	promotions contracts.PromotionRepository,
	clock clock.Clock,
) *Query {
	return &Query{
		categories: categories,
		products:   products,
		promotions: promotions,
		calculator: domain.NewCalculator(),
		clock:      clock,
	}
}

// Execute quotes all products in the category subtree at one shared
// instant, so a promotion cannot expire halfway through the listing.
func (q *Query) Execute(ctx context.Context, categoryID string) ([]*contracts.QuoteDTO, error) {
	categories, err := q.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	tree := categorydomain.NewTree(categories)
	categoryIDs := tree.DescendantIDs(categoryID)
	if categoryIDs == nil {
		return nil, categorydomain.ErrCategoryNotFound
	}

	snapshots, err := q.products.ListByCategories(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	promotions, err := q.promotions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load promotions: %w", err)
	}

	now := q.clock.Now()
	quotes := make([]*contracts.QuoteDTO, 0, len(snapshots))
	for _, snapshot := range snapshots {
		quote := q.calculator.QuoteFor(snapshot, promotions, now)
		quotes = append(quotes, quote_product.BuildDTO(snapshot, quote))
	}

	return quotes, nil
}
