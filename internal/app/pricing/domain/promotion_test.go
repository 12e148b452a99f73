package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, numerator, denominator int64) *Money {
	t.Helper()
	m, err := NewMoney(numerator, denominator)
	require.NoError(t, err)
	return m
}

// percentPromo builds an automatic, always-active percent promotion.
func percentPromo(t *testing.T, id string, scope PromotionScope, priority int64, percent int64, targets ...string) *Promotion {
	t.Helper()
	return ReconstructPromotion(
		id, "", "promo-"+id, "",
		PromotionPercent, scope, priority,
		mustMoney(t, percent, 1),
		targets, nil, nil, true, time.Time{},
	)
}

// fixedPromo builds an automatic, always-active fixed-amount promotion.
func fixedPromo(t *testing.T, id string, scope PromotionScope, priority int64, amount int64, targets ...string) *Promotion {
	t.Helper()
	return ReconstructPromotion(
		id, "", "promo-"+id, "",
		PromotionFixed, scope, priority,
		mustMoney(t, amount, 1),
		targets, nil, nil, true, time.Time{},
	)
}

func TestNewPromotion_Validation(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	value := mustMoney(t, 10, 1)

	t.Run("valid coded promotion", func(t *testing.T) {
		promo, err := NewPromotion(
			"promo-1", "SUMMER", "Summer Sale", "10% off everything",
			PromotionPercent, ScopeAll, 0, value, nil, nil, nil, true, now,
		)
		require.NoError(t, err)
		assert.Equal(t, "SUMMER", promo.Code())
		assert.False(t, promo.IsAutomatic())
		assert.Equal(t, now, promo.CreatedAt())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewPromotion(
			"promo-1", "", "", "",
			PromotionPercent, ScopeAll, 0, value, nil, nil, nil, true, now,
		)
		assert.ErrorIs(t, err, ErrEmptyPromotionName)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := NewPromotion(
			"promo-1", "", "Sale", "",
			PromotionType("bogo"), ScopeAll, 0, value, nil, nil, nil, true, now,
		)
		assert.ErrorIs(t, err, ErrInvalidPromotionType)
	})

	t.Run("unknown scope rejected", func(t *testing.T) {
		_, err := NewPromotion(
			"promo-1", "", "Sale", "",
			PromotionPercent, PromotionScope("brand"), 0, value, nil, nil, nil, true, now,
		)
		assert.ErrorIs(t, err, ErrInvalidPromotionScope)
	})

	t.Run("negative value rejected", func(t *testing.T) {
		_, err := NewPromotion(
			"promo-1", "", "Sale", "",
			PromotionPercent, ScopeAll, 0, mustMoney(t, -5, 1), nil, nil, nil, true, now,
		)
		assert.ErrorIs(t, err, ErrInvalidPromotionValue)
	})

	t.Run("percent above 100 rejected", func(t *testing.T) {
		_, err := NewPromotion(
			"promo-1", "", "Sale", "",
			PromotionPercent, ScopeAll, 0, mustMoney(t, 150, 1), nil, nil, nil, true, now,
		)
		assert.ErrorIs(t, err, ErrInvalidPromotionValue)
	})

	t.Run("fixed amount above 100 allowed", func(t *testing.T) {
		_, err := NewPromotion(
			"promo-1", "", "Sale", "",
			PromotionFixed, ScopeAll, 0, mustMoney(t, 150, 1), nil, nil, nil, true, now,
		)
		assert.NoError(t, err)
	})

	t.Run("narrowed scope requires targets", func(t *testing.T) {
		_, err := NewPromotion(
			"promo-1", "", "Sale", "",
			PromotionPercent, ScopeCategory, 0, value, nil, nil, nil, true, now,
		)
		assert.ErrorIs(t, err, ErrMissingTargets)

		_, err = NewPromotion(
			"promo-1", "", "Sale", "",
			PromotionPercent, ScopeProduct, 0, value, nil, nil, nil, true, now,
		)
		assert.ErrorIs(t, err, ErrMissingTargets)
	})

	t.Run("inverted window rejected", func(t *testing.T) {
		starts := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		ends := starts.Add(-time.Hour)
		_, err := NewPromotion(
			"promo-1", "", "Sale", "",
			PromotionPercent, ScopeAll, 0, value, nil, &starts, &ends, true, now,
		)
		assert.ErrorIs(t, err, ErrInvalidPromotionWindow)
	})
}

func TestPromotion_IsEffectiveAt(t *testing.T) {
	starts := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ends := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	windowed := ReconstructPromotion(
		"promo-1", "", "June Sale", "",
		PromotionPercent, ScopeAll, 0, mustMoney(t, 10, 1),
		nil, &starts, &ends, true, time.Time{},
	)

	t.Run("inside window", func(t *testing.T) {
		assert.True(t, windowed.IsEffectiveAt(starts.Add(15*24*time.Hour)))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, windowed.IsEffectiveAt(starts))
		assert.True(t, windowed.IsEffectiveAt(ends))
	})

	t.Run("before start", func(t *testing.T) {
		assert.False(t, windowed.IsEffectiveAt(starts.Add(-time.Second)))
	})

	t.Run("after end", func(t *testing.T) {
		assert.False(t, windowed.IsEffectiveAt(ends.Add(time.Second)))
	})

	t.Run("kill switch overrides window", func(t *testing.T) {
		disabled := ReconstructPromotion(
			"promo-2", "", "Disabled", "",
			PromotionPercent, ScopeAll, 0, mustMoney(t, 10, 1),
			nil, &starts, &ends, false, time.Time{},
		)
		assert.False(t, disabled.IsEffectiveAt(starts.Add(time.Hour)))
	})

	t.Run("nil bounds are unbounded", func(t *testing.T) {
		open := percentPromo(t, "promo-3", ScopeAll, 0, 10)
		assert.True(t, open.IsEffectiveAt(starts.Add(-10*365*24*time.Hour)))
		assert.True(t, open.IsEffectiveAt(ends.Add(10*365*24*time.Hour)))
	})
}

func TestPromotion_AppliesTo(t *testing.T) {
	product := &ProductSnapshot{ID: "prod-1", CategoryID: "cat-1"}

	t.Run("all scope covers everything", func(t *testing.T) {
		assert.True(t, percentPromo(t, "p", ScopeAll, 0, 10).AppliesTo(product))
	})

	t.Run("category scope matches target category", func(t *testing.T) {
		assert.True(t, percentPromo(t, "p", ScopeCategory, 0, 10, "cat-1").AppliesTo(product))
		assert.False(t, percentPromo(t, "p", ScopeCategory, 0, 10, "cat-9").AppliesTo(product))
	})

	t.Run("category scope skips uncategorized products", func(t *testing.T) {
		bare := &ProductSnapshot{ID: "prod-2"}
		assert.False(t, percentPromo(t, "p", ScopeCategory, 0, 10, "cat-1").AppliesTo(bare))
	})

	t.Run("product scope matches target product", func(t *testing.T) {
		assert.True(t, percentPromo(t, "p", ScopeProduct, 0, 10, "prod-1").AppliesTo(product))
		assert.False(t, percentPromo(t, "p", ScopeProduct, 0, 10, "prod-9").AppliesTo(product))
	})
}
