package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quoteInstant = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func snapshot(t *testing.T, priceCents int64) *ProductSnapshot {
	t.Helper()
	return &ProductSnapshot{
		ID:       "prod-1",
		Name:     "Sponge Set",
		SKU:      "SP-001",
		Price:    mustMoney(t, priceCents, 100),
		IsActive: true,
		InStock:  true,
	}
}

func TestApplyPromotion(t *testing.T) {
	base := mustMoney(t, 100, 1)

	t.Run("percent", func(t *testing.T) {
		result := ApplyPromotion(base, percentPromo(t, "p", ScopeAll, 0, 20))
		assert.Equal(t, "80.00", result.String())
	})

	t.Run("fixed", func(t *testing.T) {
		result := ApplyPromotion(base, fixedPromo(t, "p", ScopeAll, 0, 30))
		assert.Equal(t, "70.00", result.String())
	})

	t.Run("fixed floors at zero", func(t *testing.T) {
		result := ApplyPromotion(base, fixedPromo(t, "p", ScopeAll, 0, 150))
		assert.True(t, result.IsZero())
	})

	t.Run("percent above 100 floors at zero", func(t *testing.T) {
		result := ApplyPromotion(base, percentPromo(t, "p", ScopeAll, 0, 150))
		assert.True(t, result.IsZero())
	})

	t.Run("unknown type leaves price unchanged", func(t *testing.T) {
		promo := ReconstructPromotion(
			"p", "", "promo-p", "",
			PromotionType("bogo"), ScopeAll, 0, mustMoney(t, 20, 1),
			nil, nil, nil, true, time.Time{},
		)
		result := ApplyPromotion(base, promo)
		assert.True(t, result.Equals(base))
	})
}

func TestCalculator_QuoteFor_NoPromotions(t *testing.T) {
	calc := NewCalculator()

	quote := calc.QuoteFor(snapshot(t, 10000), nil, quoteInstant)

	assert.Equal(t, "100.00", quote.FinalPrice.String())
	assert.Nil(t, quote.DiscountPercent)
	assert.Nil(t, quote.Promotion)
}

func TestCalculator_QuoteFor_PercentPromotion(t *testing.T) {
	calc := NewCalculator()
	promo := percentPromo(t, "p", ScopeAll, 0, 20)

	quote := calc.QuoteFor(snapshot(t, 10000), []*Promotion{promo}, quoteInstant)

	assert.Equal(t, "80.00", quote.FinalPrice.String())
	require.NotNil(t, quote.DiscountPercent)
	assert.Equal(t, int64(20), *quote.DiscountPercent)
	require.NotNil(t, quote.Promotion)
	assert.Equal(t, "p", quote.Promotion.ID())
}

func TestCalculator_QuoteFor_FixedFloorsAtZero(t *testing.T) {
	calc := NewCalculator()
	promo := fixedPromo(t, "p", ScopeAll, 0, 150)

	quote := calc.QuoteFor(snapshot(t, 10000), []*Promotion{promo}, quoteInstant)

	assert.Equal(t, "0.00", quote.FinalPrice.String())
	require.NotNil(t, quote.DiscountPercent)
	assert.Equal(t, int64(100), *quote.DiscountPercent)
}

func TestCalculator_QuoteFor_MarkdownPrecedence(t *testing.T) {
	calc := NewCalculator()

	t.Run("markdown suppresses promotions", func(t *testing.T) {
		product := snapshot(t, 7500)
		product.OldPrice = mustMoney(t, 10000, 100)
		promo := percentPromo(t, "half", ScopeAll, 0, 50)

		quote := calc.QuoteFor(product, []*Promotion{promo}, quoteInstant)

		assert.Equal(t, "75.00", quote.FinalPrice.String())
		require.NotNil(t, quote.DiscountPercent)
		assert.Equal(t, int64(25), *quote.DiscountPercent)
		assert.Nil(t, quote.Promotion)
	})

	t.Run("markdown percent rounds half up", func(t *testing.T) {
		product := snapshot(t, 2000)
		product.OldPrice = mustMoney(t, 3000, 100)

		// (30 - 20) / 30 = 33.33...%
		quote := calc.QuoteFor(product, nil, quoteInstant)

		require.NotNil(t, quote.DiscountPercent)
		assert.Equal(t, int64(33), *quote.DiscountPercent)
	})

	t.Run("old price equal to price is not a markdown", func(t *testing.T) {
		product := snapshot(t, 10000)
		product.OldPrice = mustMoney(t, 10000, 100)
		promo := percentPromo(t, "p", ScopeAll, 0, 10)

		quote := calc.QuoteFor(product, []*Promotion{promo}, quoteInstant)

		assert.Equal(t, "90.00", quote.FinalPrice.String())
		require.NotNil(t, quote.Promotion)
	})
}

func TestCalculator_QuoteFor_EffectivenessFilter(t *testing.T) {
	calc := NewCalculator()
	product := snapshot(t, 10000)

	t.Run("expired window ignored", func(t *testing.T) {
		starts := quoteInstant.Add(-48 * time.Hour)
		ends := quoteInstant.Add(-24 * time.Hour)
		expired := ReconstructPromotion(
			"p", "", "promo-p", "",
			PromotionPercent, ScopeAll, 0, mustMoney(t, 20, 1),
			nil, &starts, &ends, true, time.Time{},
		)

		quote := calc.QuoteFor(product, []*Promotion{expired}, quoteInstant)
		assert.Equal(t, "100.00", quote.FinalPrice.String())
		assert.Nil(t, quote.Promotion)
	})

	t.Run("disabled promotion ignored", func(t *testing.T) {
		disabled := ReconstructPromotion(
			"p", "", "promo-p", "",
			PromotionPercent, ScopeAll, 0, mustMoney(t, 20, 1),
			nil, nil, nil, false, time.Time{},
		)

		quote := calc.QuoteFor(product, []*Promotion{disabled}, quoteInstant)
		assert.Nil(t, quote.Promotion)
	})

	t.Run("coded promotion does not auto-apply", func(t *testing.T) {
		coded := ReconstructPromotion(
			"p", "WELCOME10", "promo-p", "",
			PromotionPercent, ScopeAll, 0, mustMoney(t, 10, 1),
			nil, nil, nil, true, time.Time{},
		)

		quote := calc.QuoteFor(product, []*Promotion{coded}, quoteInstant)
		assert.Equal(t, "100.00", quote.FinalPrice.String())
		assert.Nil(t, quote.Promotion)
	})
}

func TestCalculator_QuoteFor_QuantizesFinalPrice(t *testing.T) {
	calc := NewCalculator()

	// 99.99 at 15% off is 84.9915, which must land on the cent grid.
	promo := percentPromo(t, "p", ScopeAll, 0, 15)
	quote := calc.QuoteFor(snapshot(t, 9999), []*Promotion{promo}, quoteInstant)

	assert.Equal(t, "84.99", quote.FinalPrice.String())
	require.NotNil(t, quote.DiscountPercent)
	assert.Equal(t, int64(15), *quote.DiscountPercent)
}

func TestCalculator_QuoteFor_Deterministic(t *testing.T) {
	calc := NewCalculator()
	product := snapshot(t, 10000)

	promos := []*Promotion{
		percentPromo(t, "b", ScopeAll, 0, 10),
		fixedPromo(t, "a", ScopeAll, 0, 10),
	}

	first := calc.QuoteFor(product, promos, quoteInstant)
	second := calc.QuoteFor(product, promos, quoteInstant)

	require.NotNil(t, first.Promotion)
	require.NotNil(t, second.Promotion)
	assert.Equal(t, first.Promotion.ID(), second.Promotion.ID())
	assert.True(t, first.FinalPrice.Equals(second.FinalPrice))
}
