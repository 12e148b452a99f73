package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shop-pricing-service/internal/models/m_category"
	"github.com/light-bringer/shop-pricing-service/internal/models/m_product"
	"github.com/light-bringer/shop-pricing-service/internal/models/m_promotion"
)

// CreateTestCategory creates a category directly in the database and
// returns its id. Pass an empty parentID for a root category.
func CreateTestCategory(t *testing.T, client *spanner.Client, name, parentID string) string {
	t.Helper()

	ctx := context.Background()
	categoryID := uuid.New().String()

	model := m_category.NewModel()
	data := &m_category.Data{
		CategoryID: categoryID,
		Name:       name,
		Slug:       name,
		ParentID:   spanner.NullString{StringVal: parentID, Valid: parentID != ""},
		SortOrder:  1,
		IsActive:   true,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test category")

	return categoryID
}

// CreateTestProduct creates an active in-stock product priced in cents.
func CreateTestProduct(t *testing.T, client *spanner.Client, name, categoryID string, priceCents int64) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:        productID,
		Name:             name,
		Slug:             name,
		SKU:              "SKU-" + productID[:8],
		PriceNumerator:   priceCents,
		PriceDenominator: 100,
		CategoryID:       spanner.NullString{StringVal: categoryID, Valid: categoryID != ""},
		InStock:          true,
		IsActive:         true,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestMarkdownProduct creates a product carrying a manual markdown.
func CreateTestMarkdownProduct(t *testing.T, client *spanner.Client, name string, priceCents, oldPriceCents int64) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:           productID,
		Name:                name,
		Slug:                name,
		SKU:                 "SKU-" + productID[:8],
		PriceNumerator:      priceCents,
		PriceDenominator:    100,
		OldPriceNumerator:   spanner.NullInt64{Int64: oldPriceCents, Valid: true},
		OldPriceDenominator: spanner.NullInt64{Int64: 100, Valid: true},
		InStock:             true,
		IsActive:            true,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test markdown product")

	return productID
}

// CreateTestPromotion creates an always-active promotion. A non-empty
// code makes it checkout-redeemable instead of automatic.
func CreateTestPromotion(t *testing.T, client *spanner.Client, code, promoType, scope string, valueUnits int64, targetIDs []string) string {
	t.Helper()

	ctx := context.Background()
	promotionID := uuid.New().String()

	model := m_promotion.NewModel()
	data := &m_promotion.Data{
		PromotionID:      promotionID,
		Code:             spanner.NullString{StringVal: code, Valid: code != ""},
		Name:             "promo-" + promotionID[:8],
		PromoType:        promoType,
		Scope:            scope,
		ValueNumerator:   valueUnits,
		ValueDenominator: 1,
		TargetIDs:        targetIDs,
		IsActive:         true,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test promotion")

	return promotionID
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}
