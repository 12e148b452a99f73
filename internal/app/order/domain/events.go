package domain

import "time"

// DomainEvent is raised by the order aggregate and published through the
// transactional outbox.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// OrderCreatedEvent is emitted once when an order is placed.
type OrderCreatedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	ItemCount   int       `json:"item_count"`
	Subtotal    string    `json:"subtotal"`
	Discount    string    `json:"discount"`
	Total       string    `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *OrderCreatedEvent) EventType() string   { return "order.created" }
func (e *OrderCreatedEvent) AggregateID() string { return e.OrderID }
