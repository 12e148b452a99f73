package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/shop-pricing-service/internal/app/category/domain"
)

// CategoryRepository defines category persistence.
type CategoryRepository interface {
	// InsertMut creates a mutation for inserting a category
	InsertMut(category *domain.Category) *spanner.Mutation

	// ListAll retrieves every category for building the hierarchy
	ListAll(ctx context.Context) ([]*domain.Category, error)
}
