package domain

import (
	"time"

	pricing "github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRefunded   OrderStatus = "refunded"
)

// DeliveryType is how the customer receives the order.
type DeliveryType string

const (
	DeliveryPickup  DeliveryType = "pickup"
	DeliveryCourier DeliveryType = "courier"
	DeliveryCarrier DeliveryType = "carrier"
)

// PaymentType is how the customer pays.
type PaymentType string

const (
	PaymentCash           PaymentType = "cash"
	PaymentCardOnDelivery PaymentType = "card_on_delivery"
	PaymentOnline         PaymentType = "online"
)

// Item is one order line with the product details and unit price frozen
// at checkout time. Later catalog or promotion changes never alter it.
type Item struct {
	ProductID   string
	ProductName string
	ProductSKU  string
	Quantity    int64
	UnitPrice   *pricing.Money
	Total       *pricing.Money
}

// CustomerInfo carries the contact and fulfillment details the customer
// entered at checkout.
type CustomerInfo struct {
	Name            string
	Phone           string
	Email           string
	DeliveryType    DeliveryType
	DeliveryAddress string
	DeliveryCity    string
	PaymentType     PaymentType
	Notes           string
}

// Order is the checkout aggregate. Totals are computed once at creation
// and stored; they are never re-derived from the lines afterwards.
type Order struct {
	id            string
	number        string
	customer      CustomerInfo
	items         []Item
	subtotal      *pricing.Money
	discount      *pricing.Money
	deliveryCost  *pricing.Money
	total         *pricing.Money
	promotionCode string
	status        OrderStatus
	createdAt     time.Time

	events []DomainEvent
}

// NewOrder assembles an order from already-priced lines and totals.
// total = subtotal - discount + deliveryCost.
func NewOrder(
	id, number string,
	customer CustomerInfo,
	items []Item,
	subtotal, discount, deliveryCost *pricing.Money,
	promotionCode string,
	now time.Time,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	total := subtotal.Subtract(discount).Add(deliveryCost)

	order := &Order{
		id:            id,
		number:        number,
		customer:      customer,
		items:         items,
		subtotal:      subtotal,
		discount:      discount,
		deliveryCost:  deliveryCost,
		total:         total,
		promotionCode: promotionCode,
		status:        StatusPending,
		createdAt:     now,
	}

	order.recordEvent(&OrderCreatedEvent{
		OrderID:     order.id,
		OrderNumber: order.number,
		ItemCount:   len(items),
		Subtotal:    subtotal.String(),
		Discount:    discount.String(),
		Total:       total.String(),
		CreatedAt:   now,
	})

	return order, nil
}

func (o *Order) ID() string             { return o.id }
func (o *Order) Number() string         { return o.number }
func (o *Order) Customer() CustomerInfo { return o.customer }
func (o *Order) PromotionCode() string  { return o.promotionCode }
func (o *Order) Status() OrderStatus    { return o.status }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }

func (o *Order) Subtotal() *pricing.Money     { return o.subtotal.Copy() }
func (o *Order) Discount() *pricing.Money     { return o.discount.Copy() }
func (o *Order) DeliveryCost() *pricing.Money { return o.deliveryCost.Copy() }
func (o *Order) Total() *pricing.Money        { return o.total.Copy() }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// DomainEvents returns events recorded since creation or the last clear.
func (o *Order) DomainEvents() []DomainEvent {
	return o.events
}

// ClearEvents drops recorded events after they have been dispatched.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}
