package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/shop-pricing-service/internal/app/order/domain"
)

// OrderItemDTO is one stored order line.
type OrderItemDTO struct {
	ProductID   string
	ProductName string
	ProductSKU  string
	Quantity    int64
	UnitPrice   string // decimal string
	Total       string
}

// OrderDTO is the stored view of an order returned by queries.
type OrderDTO struct {
	OrderID       string
	OrderNumber   string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	DeliveryType  string
	PaymentType   string
	Items         []*OrderItemDTO
	Subtotal      string
	Discount      string
	DeliveryCost  string
	Total         string
	PromotionCode string
	Status        string
	CreatedAt     time.Time
}

// OrderRepository defines order persistence.
type OrderRepository interface {
	// InsertMuts creates the mutations persisting an order and all its
	// lines; the caller commits them in a single plan
	InsertMuts(order *domain.Order) ([]*spanner.Mutation, error)

	// GetByID retrieves a stored order with its lines
	GetByID(ctx context.Context, orderID string) (*OrderDTO, error)
}
