package m_promotion

// Field name constants for the promotions table.
const (
	TableName = "promotions"

	PromotionID      = "promotion_id"
	Code             = "code"
	Name             = "name"
	Description      = "description"
	PromoType        = "promo_type"
	Scope            = "scope"
	Priority         = "priority"
	ValueNumerator   = "value_numerator"
	ValueDenominator = "value_denominator"
	TargetIDs        = "target_ids"
	StartsAt         = "starts_at"
	EndsAt           = "ends_at"
	IsActive         = "is_active"
	CreatedAt        = "created_at"
)
