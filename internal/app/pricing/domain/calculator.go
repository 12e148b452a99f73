package domain

import (
	"math/big"
	"time"
)

var percentDivisor = big.NewRat(1, 100)

// ApplyPromotion applies a promotion's discount rule to a base price and
// returns the resulting price, exact (unquantized) and floored at zero.
// The floor covers both rule types: a fixed amount above the price and a
// percent value above 100 would otherwise drive the price negative.
// Out-of-range values never cause an error here; the admin write path
// validates, the calculator tolerates.
func ApplyPromotion(basePrice *Money, promo *Promotion) *Money {
	var result *Money

	switch promo.Type() {
	case PromotionPercent:
		discount := basePrice.MultiplyByRat(promo.Value().Rat()).MultiplyByRat(percentDivisor)
		result = basePrice.Subtract(discount)
	case PromotionFixed:
		result = basePrice.Subtract(promo.Value())
	default:
		return basePrice.Copy()
	}

	if result.IsNegative() {
		return ZeroMoney()
	}
	return result
}

// Quote is the outcome of pricing one product: the effective sale price
// and the discount percentage shown to the customer. DiscountPercent is
// nil when nothing lowers the price. Promotion carries the winning
// campaign for display purposes and is nil for manual markdowns.
type Quote struct {
	FinalPrice      *Money
	DiscountPercent *int64
	Promotion       *Promotion
}

// Calculator resolves the effective price of a product against the
// currently active promotional campaigns.
type Calculator struct {
	selector *Selector
}

// NewCalculator creates a new Calculator.
func NewCalculator() *Calculator {
	return &Calculator{selector: NewSelector()}
}

// EffectiveAt filters promotions down to those live at instant now. The
// engine applies this filter itself rather than trusting a pre-filtered
// list, so "now" can be injected in tests.
func (c *Calculator) EffectiveAt(promotions []*Promotion, now time.Time) []*Promotion {
	effective := make([]*Promotion, 0, len(promotions))
	for _, promo := range promotions {
		if promo.IsEffectiveAt(now) {
			effective = append(effective, promo)
		}
	}
	return effective
}

// QuoteFor computes the effective price for a product at instant now.
//
// A manual markdown (old price strictly above the sale price) takes
// absolute precedence: promotions are not evaluated at all and the
// displayed percentage is derived from the struck-through price.
// Otherwise the winning automatic promotion, if any, sets the price.
//
// QuoteFor is a total function: it cannot fail for a valid product and
// returns a price >= 0 and a percentage that is nil or within [0,100].
func (c *Calculator) QuoteFor(product *ProductSnapshot, promotions []*Promotion, now time.Time) *Quote {
	basePrice := product.Price

	if product.HasMarkdown() {
		percent := discountPercent(product.OldPrice, basePrice)
		return &Quote{
			FinalPrice:      basePrice.Copy(),
			DiscountPercent: &percent,
		}
	}

	effective := c.EffectiveAt(promotions, now)
	applicable := c.selector.Applicable(product, effective)

	automatic := make([]*Promotion, 0, len(applicable))
	for _, promo := range applicable {
		if promo.IsAutomatic() {
			automatic = append(automatic, promo)
		}
	}

	winner := c.selector.SelectBest(basePrice, automatic)
	if winner == nil {
		return &Quote{FinalPrice: basePrice.Copy()}
	}

	finalPrice := ApplyPromotion(basePrice, winner).Quantize()
	percent := discountPercent(basePrice, finalPrice)

	return &Quote{
		FinalPrice:      finalPrice,
		DiscountPercent: &percent,
		Promotion:       winner,
	}
}

// discountPercent computes round((reference - price) / reference * 100)
// with round half up. Callers guarantee reference > 0.
func discountPercent(reference, price *Money) int64 {
	ratio := new(big.Rat).Sub(reference.Rat(), price.Rat())
	ratio.Quo(ratio, reference.Rat())
	ratio.Mul(ratio, big.NewRat(100, 1))
	return roundRat(ratio)
}

// roundRat rounds a rational to the nearest integer, ties away from zero.
func roundRat(r *big.Rat) int64 {
	quo, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))

	rem.Abs(rem)
	rem.Mul(rem, big.NewInt(2))
	if rem.Cmp(r.Denom()) >= 0 {
		if r.Sign() >= 0 {
			quo.Add(quo, big.NewInt(1))
		} else {
			quo.Sub(quo, big.NewInt(1))
		}
	}

	return quo.Int64()
}
