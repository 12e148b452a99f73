package get_order

import (
	"context"

	"github.com/light-bringer/shop-pricing-service/internal/app/order/contracts"
)

// Query retrieves a stored order with its lines.
type Query struct {
	orders contracts.OrderRepository
}

// NewQuery creates a new get order query.
func NewQuery(orders contracts.OrderRepository) *Query {
	return &Query{orders: orders}
}

// Execute retrieves an order by id.
func (q *Query) Execute(ctx context.Context, orderID string) (*contracts.OrderDTO, error) {
	return q.orders.GetByID(ctx, orderID)
}
