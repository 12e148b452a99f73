package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID                 = "order_id"
	OrderNumber             = "order_number"
	CustomerName            = "customer_name"
	CustomerPhone           = "customer_phone"
	CustomerEmail           = "customer_email"
	DeliveryType            = "delivery_type"
	DeliveryAddress         = "delivery_address"
	DeliveryCity            = "delivery_city"
	PaymentType             = "payment_type"
	SubtotalNumerator       = "subtotal_numerator"
	SubtotalDenominator     = "subtotal_denominator"
	DiscountNumerator       = "discount_numerator"
	DiscountDenominator     = "discount_denominator"
	DeliveryCostNumerator   = "delivery_cost_numerator"
	DeliveryCostDenominator = "delivery_cost_denominator"
	TotalNumerator          = "total_numerator"
	TotalDenominator        = "total_denominator"
	PromotionCode           = "promotion_code"
	Status                  = "status"
	Notes                   = "notes"
	CreatedAt               = "created_at"
	UpdatedAt               = "updated_at"
)
