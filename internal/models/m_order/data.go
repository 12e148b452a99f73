package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the orders table.
type Data struct {
	OrderID                 string             `spanner:"order_id"`
	OrderNumber             string             `spanner:"order_number"`
	CustomerName            string             `spanner:"customer_name"`
	CustomerPhone           string             `spanner:"customer_phone"`
	CustomerEmail           spanner.NullString `spanner:"customer_email"`
	DeliveryType            string             `spanner:"delivery_type"`
	DeliveryAddress         spanner.NullString `spanner:"delivery_address"`
	DeliveryCity            spanner.NullString `spanner:"delivery_city"`
	PaymentType             string             `spanner:"payment_type"`
	SubtotalNumerator       int64              `spanner:"subtotal_numerator"`
	SubtotalDenominator     int64              `spanner:"subtotal_denominator"`
	DiscountNumerator       int64              `spanner:"discount_numerator"`
	DiscountDenominator     int64              `spanner:"discount_denominator"`
	DeliveryCostNumerator   int64              `spanner:"delivery_cost_numerator"`
	DeliveryCostDenominator int64              `spanner:"delivery_cost_denominator"`
	TotalNumerator          int64              `spanner:"total_numerator"`
	TotalDenominator        int64              `spanner:"total_denominator"`
	PromotionCode           spanner.NullString `spanner:"promotion_code"`
	Status                  string             `spanner:"status"`
	Notes                   spanner.NullString `spanner:"notes"`
	CreatedAt               time.Time          `spanner:"created_at"`
	UpdatedAt               time.Time          `spanner:"updated_at"`
}
