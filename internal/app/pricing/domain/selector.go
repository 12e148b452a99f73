package domain

// Scope ranks: a narrower scope always beats a wider one, regardless of
// the discount size.
const (
	rankAll      = 1
	rankCategory = 2
	rankProduct  = 3
)

func scopeRank(scope PromotionScope) int {
	switch scope {
	case ScopeProduct:
		return rankProduct
	case ScopeCategory:
		return rankCategory
	default:
		return rankAll
	}
}

// Selector picks the single winning promotion for a product. It is a
// stateless domain service: given the same product, promotion list and
// base price it always returns the same winner, independent of list order.
type Selector struct{}

// NewSelector creates a new Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Applicable filters promotions down to those whose scope covers the
// product. Effectiveness (kill switch, activity window) is the caller's
// concern; see Calculator.EffectiveAt.
func (s *Selector) Applicable(product *ProductSnapshot, promotions []*Promotion) []*Promotion {
	applicable := make([]*Promotion, 0, len(promotions))
	for _, promo := range promotions {
		if promo.AppliesTo(product) {
			applicable = append(applicable, promo)
		}
	}
	return applicable
}

// SelectBest reduces applicable promotions to at most one winner:
//
//  1. keep only the highest scope tier present (product > category > all),
//  2. within that tier keep only the maximum priority,
//  3. among the rest pick the one yielding the strictly lowest price,
//  4. exact price ties resolve to the lowest promotion id.
//
// A promotion that does not lower the price is never a winner, so the
// result may be nil even when candidates exist.
func (s *Selector) SelectBest(basePrice *Money, candidates []*Promotion) *Promotion {
	if len(candidates) == 0 {
		return nil
	}

	maxRank := 0
	for _, promo := range candidates {
		if r := scopeRank(promo.Scope()); r > maxRank {
			maxRank = r
		}
	}

	tier := make([]*Promotion, 0, len(candidates))
	for _, promo := range candidates {
		if scopeRank(promo.Scope()) == maxRank {
			tier = append(tier, promo)
		}
	}

	maxPriority := tier[0].Priority()
	for _, promo := range tier[1:] {
		if promo.Priority() > maxPriority {
			maxPriority = promo.Priority()
		}
	}

	var best *Promotion
	bestPrice := basePrice
	for _, promo := range tier {
		if promo.Priority() != maxPriority {
			continue
		}
		price := ApplyPromotion(basePrice, promo)
		if price.LessThan(bestPrice) {
			best = promo
			bestPrice = price
			continue
		}
		if best != nil && price.Equals(bestPrice) && promo.ID() < best.ID() {
			best = promo
		}
	}

	return best
}
