package domain

import (
	"fmt"
	"math/big"
	"time"

	pricing "github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
)

var percentRat = big.NewRat(1, 100)

// PricingPolicy holds the order-level pricing knobs that come from
// configuration rather than the catalog.
type PricingPolicy struct {
	FreeDeliveryThreshold *pricing.Money
}

// Line is one requested order line before pricing.
type Line struct {
	Product  *pricing.ProductSnapshot
	Quantity int64
}

// PriceLines prices each requested line through the promotion calculator
// and returns the frozen items plus the order subtotal. Any unavailable
// product aborts the whole order.
func PriceLines(
	calc *pricing.Calculator,
	lines []Line,
	promotions []*pricing.Promotion,
	now time.Time,
) ([]Item, *pricing.Money, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyOrder
	}

	items := make([]Item, 0, len(lines))
	subtotal := pricing.ZeroMoney()

	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, nil, fmt.Errorf("line %d: %w", i, ErrInvalidQuantity)
		}
		if line.Product == nil || !line.Product.IsActive {
			id := ""
			if line.Product != nil {
				id = line.Product.ID
			}
			return nil, nil, fmt.Errorf("line %d: product %s: %w", i, id, pricing.ErrProductInactive)
		}
		if !line.Product.InStock {
			return nil, nil, fmt.Errorf("line %d: product %s: %w", i, line.Product.ID, pricing.ErrOutOfStock)
		}

		quote := calc.QuoteFor(line.Product, promotions, now)
		lineTotal := quote.FinalPrice.MultiplyByInt(line.Quantity)

		items = append(items, Item{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			ProductSKU:  line.Product.SKU,
			Quantity:    line.Quantity,
			UnitPrice:   quote.FinalPrice,
			Total:       lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	return items, subtotal, nil
}

// PromoCodeDiscount computes the order-level discount for a redeemed
// promotion code. A nil promotion (unknown or expired code) yields a
// zero discount rather than an error; checkout proceeds at full price.
// The discount never exceeds the subtotal.
func PromoCodeDiscount(subtotal *pricing.Money, promo *pricing.Promotion) *pricing.Money {
	if promo == nil {
		return pricing.ZeroMoney()
	}

	switch promo.Type() {
	case pricing.PromotionPercent:
		return subtotal.MultiplyByRat(promo.Value().Rat()).MultiplyByRat(percentRat).Quantize()
	case pricing.PromotionFixed:
		value := promo.Value()
		if value.IsNegative() {
			return pricing.ZeroMoney()
		}
		if value.GreaterThan(subtotal) {
			return subtotal.Copy()
		}
		return value
	default:
		return pricing.ZeroMoney()
	}
}

// DeliveryCost resolves the delivery fee for an order subtotal. Orders at
// or above the free-delivery threshold ship free; below it the carrier
// bills the customer directly, so the order itself still carries zero.
func DeliveryCost(subtotal *pricing.Money, policy PricingPolicy) *pricing.Money {
	if policy.FreeDeliveryThreshold != nil && subtotal.GreaterOrEqual(policy.FreeDeliveryThreshold) {
		return pricing.ZeroMoney()
	}
	return pricing.ZeroMoney()
}
