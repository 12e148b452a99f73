package m_promotion

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the promotions table.
type Data struct {
	PromotionID      string             `spanner:"promotion_id"`
	Code             spanner.NullString `spanner:"code"` // NULL for automatic promotions
	Name             string             `spanner:"name"`
	Description      string             `spanner:"description"`
	PromoType        string             `spanner:"promo_type"`
	Scope            string             `spanner:"scope"`
	Priority         int64              `spanner:"priority"`
	ValueNumerator   int64              `spanner:"value_numerator"`
	ValueDenominator int64              `spanner:"value_denominator"`
	TargetIDs        []string           `spanner:"target_ids"`
	StartsAt         spanner.NullTime   `spanner:"starts_at"`
	EndsAt           spanner.NullTime   `spanner:"ends_at"`
	IsActive         bool               `spanner:"is_active"`
	CreatedAt        time.Time          `spanner:"created_at"`
}
