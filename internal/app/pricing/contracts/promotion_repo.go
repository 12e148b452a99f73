package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
)

// PromotionRepository defines promotion persistence.
// Write methods return mutations; callers commit them through a plan.
type PromotionRepository interface {
	// InsertMut creates a mutation for inserting a promotion
	InsertMut(promotion *domain.Promotion) (*spanner.Mutation, error)

	// DeactivateMut creates a mutation flipping the kill switch off
	DeactivateMut(promotionID string) *spanner.Mutation

	// GetByID retrieves a promotion by id
	GetByID(ctx context.Context, promotionID string) (*domain.Promotion, error)

	// GetByCode retrieves a promotion by its checkout code
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)

	// ListAll retrieves every promotion; the engine filters effectiveness itself
	ListAll(ctx context.Context) ([]*domain.Promotion, error)
}
