//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categoryrepo "github.com/light-bringer/shop-pricing-service/internal/app/category/repo"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/queries/list_category_quotes"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/queries/quote_product"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/shop-pricing-service/tests/testutil"
)

func TestQuoteProduct_AutomaticPromotion(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Now().UTC())

	productID := testutil.CreateTestProduct(t, client, "sponge", "", 10000)
	testutil.CreateTestPromotion(t, client, "", "percent", "all", 20, nil)

	query := quote_product.NewQuery(
		repo.NewProductReader(client),
		repo.NewPromotionRepo(client, clk),
		clk,
	)

	quote, err := query.Execute(ctx, productID)
	require.NoError(t, err)

	assert.Equal(t, "100.00", quote.BasePrice)
	assert.Equal(t, "80.00", quote.FinalPrice)
	require.NotNil(t, quote.DiscountPercent)
	assert.Equal(t, int64(20), *quote.DiscountPercent)
	require.NotNil(t, quote.PromotionID)
}

func TestQuoteProduct_MarkdownWinsOverPromotion(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Now().UTC())

	productID := testutil.CreateTestMarkdownProduct(t, client, "brush", 7500, 10000)
	testutil.CreateTestPromotion(t, client, "", "percent", "all", 50, nil)

	query := quote_product.NewQuery(
		repo.NewProductReader(client),
		repo.NewPromotionRepo(client, clk),
		clk,
	)

	quote, err := query.Execute(ctx, productID)
	require.NoError(t, err)

	assert.Equal(t, "75.00", quote.FinalPrice)
	require.NotNil(t, quote.DiscountPercent)
	assert.Equal(t, int64(25), *quote.DiscountPercent)
	assert.Nil(t, quote.PromotionID)
}

func TestQuoteProduct_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Now().UTC())

	query := quote_product.NewQuery(
		repo.NewProductReader(client),
		repo.NewPromotionRepo(client, clk),
		clk,
	)

	_, err := query.Execute(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListCategoryQuotes_IncludesSubtree(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Now().UTC())

	rootID := testutil.CreateTestCategory(t, client, "household", "")
	childID := testutil.CreateTestCategory(t, client, "sponges", rootID)
	otherID := testutil.CreateTestCategory(t, client, "garden", "")

	testutil.CreateTestProduct(t, client, "in-root", rootID, 5000)
	testutil.CreateTestProduct(t, client, "in-child", childID, 3000)
	testutil.CreateTestProduct(t, client, "elsewhere", otherID, 9000)

	// Category promotion targets the root but covers the subtree's products
	// only where the product's own category is targeted.
	testutil.CreateTestPromotion(t, client, "", "percent", "category", 10, []string{rootID, childID})

	query := list_category_quotes.NewQuery(
		categoryrepo.NewCategoryRepo(client),
		repo.NewProductReader(client),
		repo.NewPromotionRepo(client, clk),
		clk,
	)

	quotes, err := query.Execute(ctx, rootID)
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	for _, quote := range quotes {
		require.NotNil(t, quote.DiscountPercent)
		assert.Equal(t, int64(10), *quote.DiscountPercent)
	}
}
