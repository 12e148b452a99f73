//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/shop-pricing-service/tests/testutil"
)

func TestPromotionRepository_InsertAndGet(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	repository := repo.NewPromotionRepo(client, clock.NewMockClock(now))

	value, err := domain.NewMoney(15, 1)
	require.NoError(t, err)

	starts := now.Add(-time.Hour)
	ends := now.Add(24 * time.Hour)
	promotion, err := domain.NewPromotion(
		"promo-1", "SPRING15", "Spring Sale", "15% off",
		domain.PromotionPercent, domain.ScopeAll, 2, value,
		nil, &starts, &ends, true, now,
	)
	require.NoError(t, err)

	mutation, err := repository.InsertMut(promotion)
	require.NoError(t, err)

	_, err = client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err)

	retrieved, err := repository.GetByID(ctx, "promo-1")
	require.NoError(t, err)
	assert.Equal(t, "SPRING15", retrieved.Code())
	assert.Equal(t, domain.PromotionPercent, retrieved.Type())
	assert.Equal(t, domain.ScopeAll, retrieved.Scope())
	assert.Equal(t, int64(2), retrieved.Priority())
	assert.Equal(t, "15.00", retrieved.Value().String())
	assert.True(t, retrieved.IsEffectiveAt(now))
	assert.False(t, retrieved.IsAutomatic())
}

func TestPromotionRepository_GetByCode(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewPromotionRepo(client, clock.NewRealClock())

	testutil.CreateTestPromotion(t, client, "TAKE20", "fixed", "all", 20, nil)

	promotion, err := repository.GetByCode(ctx, "TAKE20")
	require.NoError(t, err)
	assert.Equal(t, "TAKE20", promotion.Code())
	assert.Equal(t, "20.00", promotion.Value().String())

	_, err = repository.GetByCode(ctx, "NOSUCHCODE")
	assert.ErrorIs(t, err, domain.ErrPromotionNotFound)
}

func TestPromotionRepository_ListAll_AndDeactivate(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewPromotionRepo(client, clock.NewRealClock())

	targetID := testutil.CreateTestCategory(t, client, "household", "")
	promoID := testutil.CreateTestPromotion(t, client, "", "percent", "category", 10, []string{targetID})
	testutil.CreateTestPromotion(t, client, "", "fixed", "all", 5, nil)

	promotions, err := repository.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, promotions, 2)

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.DeactivateMut(promoID)})
	require.NoError(t, err)

	deactivated, err := repository.GetByID(ctx, promoID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive())
	assert.Equal(t, []string{targetID}, deactivated.TargetIDs())
}
