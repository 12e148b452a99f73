package create_order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/shop-pricing-service/internal/app/order/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/app/order/domain"
	pricingcontracts "github.com/light-bringer/shop-pricing-service/internal/app/pricing/contracts"
	pricing "github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/committer"
)

// LineRequest is one requested order line.
type LineRequest struct {
	ProductID string
	Quantity  int64
}

// Request contains the data needed to place an order.
type Request struct {
	Lines           []LineRequest
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryType    domain.DeliveryType
	DeliveryAddress string
	DeliveryCity    string
	PaymentType     domain.PaymentType
	Notes           string
	PromotionCode   string
}

// Response carries the identifiers and totals of the placed order.
type Response struct {
	OrderID     string
	OrderNumber string
	Subtotal    string
	Discount    string
	Total       string
}

// Interactor handles the create order use case: price the lines against
// current promotions, redeem the promo code, and persist the order, its
// lines and the outbox event in one atomic commit.
type Interactor struct {
	products   pricingcontracts.ProductReader
	promotions pricingcontracts.PromotionRepository
	orders     contracts.OrderRepository
	outbox     contracts.OutboxRepository
	committer  *committer.Committer
	calculator *pricing.Calculator
	policy     domain.PricingPolicy
	clock      clock.Clock
	logger     *zap.Logger
}

// NewInteractor creates a new create order interactor.
func NewInteractor(
	products pricingcontracts.ProductReader,
	promotions pricingcontracts.PromotionRepository,
	orders contracts.OrderRepository,
	outbox contracts.OutboxRepository,
	committer *committer.Committer,
	policy domain.PricingPolicy,
	clock clock.Clock,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		products:   products,
		promotions: promotions,
		orders:     orders,
		outbox:     outbox,
		committer:  committer,
		calculator: pricing.NewCalculator(),
		policy:     policy,
		clock:      clock,
		logger:     logger,
	}
}

// Execute places an order.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	now := i.clock.Now()

	promotions, err := i.promotions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load promotions: %w", err)
	}

	lines := make([]domain.Line, 0, len(req.Lines))
	for _, line := range req.Lines {
		snapshot, err := i.products.GetSnapshot(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, err)
		}
		lines = append(lines, domain.Line{Product: snapshot, Quantity: line.Quantity})
	}

	items, subtotal, err := domain.PriceLines(i.calculator, lines, promotions, now)
	if err != nil {
		return nil, err
	}

	discount := pricing.ZeroMoney()
	if req.PromotionCode != "" {
		discount = i.redeemCode(ctx, req.PromotionCode, subtotal, now)
	}

	deliveryCost := domain.DeliveryCost(subtotal, i.policy)

	number, err := domain.GenerateOrderNumber(now)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(
		uuid.New().String(),
		number,
		domain.CustomerInfo{
			Name:            req.CustomerName,
			Phone:           req.CustomerPhone,
			Email:           req.CustomerEmail,
			DeliveryType:    req.DeliveryType,
			DeliveryAddress: req.DeliveryAddress,
			DeliveryCity:    req.DeliveryCity,
			PaymentType:     req.PaymentType,
			Notes:           req.Notes,
		},
		items,
		subtotal,
		discount,
		deliveryCost,
		req.PromotionCode,
		now,
	)
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()

	orderMuts, err := i.orders.InsertMuts(order)
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(orderMuts)

	for _, event := range order.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outbox.EnrichEvent(event, string(payload))
		plan.Add(i.outbox.InsertMut(outboxEvent))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	order.ClearEvents()

	i.logger.Info("order created",
		zap.String("order_id", order.ID()),
		zap.String("order_number", order.Number()),
		zap.Int("items", len(items)),
		zap.String("total", order.Total().String()),
	)

	return &Response{
		OrderID:     order.ID(),
		OrderNumber: order.Number(),
		Subtotal:    order.Subtotal().String(),
		Discount:    order.Discount().String(),
		Total:       order.Total().String(),
	}, nil
}

// redeemCode resolves a promo code to an order-level discount. Unknown,
// disabled or expired codes are tolerated: the order proceeds at full
// price with a warning, matching storefront behavior where a stale code
// must not block checkout.
func (i *Interactor) redeemCode(ctx context.Context, code string, subtotal *pricing.Money, now time.Time) *pricing.Money {
	promo, err := i.promotions.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, pricing.ErrPromotionNotFound) {
			i.logger.Warn("promo code lookup failed", zap.String("code", code), zap.Error(err))
		} else {
			i.logger.Warn("unknown promo code ignored", zap.String("code", code))
		}
		return pricing.ZeroMoney()
	}

	if !promo.IsEffectiveAt(now) {
		i.logger.Warn("stale promo code ignored",
			zap.String("code", code),
			zap.String("promotion_id", promo.ID()),
		)
		return pricing.ZeroMoney()
	}

	return domain.PromoCodeDiscount(subtotal, promo)
}
