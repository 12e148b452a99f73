package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/shop-pricing-service/internal/app/order/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/app/order/domain"
	pricing "github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/shop-pricing-service/internal/models/m_order"
	"github.com/light-bringer/shop-pricing-service/internal/models/m_order_item"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/query"
)

var orderColumns = []string{
	m_order.OrderID,
	m_order.OrderNumber,
	m_order.CustomerName,
	m_order.CustomerPhone,
	m_order.CustomerEmail,
	m_order.DeliveryType,
	m_order.DeliveryAddress,
	m_order.DeliveryCity,
	m_order.PaymentType,
	m_order.SubtotalNumerator,
	m_order.SubtotalDenominator,
	m_order.DiscountNumerator,
	m_order.DiscountDenominator,
	m_order.DeliveryCostNumerator,
	m_order.DeliveryCostDenominator,
	m_order.TotalNumerator,
	m_order.TotalDenominator,
	m_order.PromotionCode,
	m_order.Status,
	m_order.Notes,
	m_order.CreatedAt,
	m_order.UpdatedAt,
}

// OrderRepo implements OrderRepository for Spanner.
type OrderRepo struct {
	client    *spanner.Client
	model     *m_order.Model
	itemModel *m_order_item.Model
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(client *spanner.Client) contracts.OrderRepository {
	return &OrderRepo{
		client:    client,
		model:     m_order.NewModel(),
		itemModel: m_order_item.NewModel(),
	}
}

// InsertMuts creates the mutations persisting an order and all its lines.
// The caller commits them in one plan so the order never lands partially.
func (r *OrderRepo) InsertMuts(order *domain.Order) ([]*spanner.Mutation, error) {
	data, err := r.orderToData(order)
	if err != nil {
		return nil, err
	}

	muts := make([]*spanner.Mutation, 0, len(order.Items())+1)
	muts = append(muts, r.model.InsertMut(data))

	for i, item := range order.Items() {
		if !item.UnitPrice.IsSafeForStorage() || !item.Total.IsSafeForStorage() {
			return nil, fmt.Errorf("order line %d price exceeds storage capacity", i)
		}
		muts = append(muts, r.itemModel.InsertMut(&m_order_item.Data{
			OrderID:              order.ID(),
			LineNumber:           int64(i + 1),
			ProductID:            item.ProductID,
			ProductName:          item.ProductName,
			ProductSKU:           item.ProductSKU,
			Quantity:             item.Quantity,
			UnitPriceNumerator:   item.UnitPrice.Numerator(),
			UnitPriceDenominator: item.UnitPrice.Denominator(),
			TotalNumerator:       item.Total.Numerator(),
			TotalDenominator:     item.Total.Denominator(),
		}))
	}

	return muts, nil
}

// GetByID retrieves a stored order with its lines.
func (r *OrderRepo) GetByID(ctx context.Context, orderID string) (*contracts.OrderDTO, error) {
	row, err := r.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, orderColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	var data m_order.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}

	dto, err := r.dataToDTO(&data)
	if err != nil {
		return nil, err
	}

	items, err := r.readItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	dto.Items = items

	return dto, nil
}

func (r *OrderRepo) readItems(ctx context.Context, orderID string) ([]*contracts.OrderItemDTO, error) {
	stmt := query.From(m_order_item.TableName).
		Select(
			m_order_item.OrderID,
			m_order_item.LineNumber,
			m_order_item.ProductID,
			m_order_item.ProductName,
			m_order_item.ProductSKU,
			m_order_item.Quantity,
			m_order_item.UnitPriceNumerator,
			m_order_item.UnitPriceDenominator,
			m_order_item.TotalNumerator,
			m_order_item.TotalDenominator,
		).
		Where(query.Eq(m_order_item.OrderID, orderID)).
		OrderBy(m_order_item.LineNumber, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	items := make([]*contracts.OrderItemDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read order items: %w", err)
		}

		var data m_order_item.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order item: %w", err)
		}

		unitPrice, err := moneyString(data.UnitPriceNumerator, data.UnitPriceDenominator)
		if err != nil {
			return nil, err
		}
		total, err := moneyString(data.TotalNumerator, data.TotalDenominator)
		if err != nil {
			return nil, err
		}

		items = append(items, &contracts.OrderItemDTO{
			ProductID:   data.ProductID,
			ProductName: data.ProductName,
			ProductSKU:  data.ProductSKU,
			Quantity:    data.Quantity,
			UnitPrice:   unitPrice,
			Total:       total,
		})
	}

	return items, nil
}

// orderToData converts the aggregate to database Data.
func (r *OrderRepo) orderToData(order *domain.Order) (*m_order.Data, error) {
	for _, m := range []*pricing.Money{order.Subtotal(), order.Discount(), order.DeliveryCost(), order.Total()} {
		if !m.IsSafeForStorage() {
			return nil, fmt.Errorf("order amount exceeds storage capacity")
		}
	}

	customer := order.Customer()

	return &m_order.Data{
		OrderID:                 order.ID(),
		OrderNumber:             order.Number(),
		CustomerName:            customer.Name,
		CustomerPhone:           customer.Phone,
		CustomerEmail:           spanner.NullString{StringVal: customer.Email, Valid: customer.Email != ""},
		DeliveryType:            string(customer.DeliveryType),
		DeliveryAddress:         spanner.NullString{StringVal: customer.DeliveryAddress, Valid: customer.DeliveryAddress != ""},
		DeliveryCity:            spanner.NullString{StringVal: customer.DeliveryCity, Valid: customer.DeliveryCity != ""},
		PaymentType:             string(customer.PaymentType),
		SubtotalNumerator:       order.Subtotal().Numerator(),
		SubtotalDenominator:     order.Subtotal().Denominator(),
		DiscountNumerator:       order.Discount().Numerator(),
		DiscountDenominator:     order.Discount().Denominator(),
		DeliveryCostNumerator:   order.DeliveryCost().Numerator(),
		DeliveryCostDenominator: order.DeliveryCost().Denominator(),
		TotalNumerator:          order.Total().Numerator(),
		TotalDenominator:        order.Total().Denominator(),
		PromotionCode:           spanner.NullString{StringVal: order.PromotionCode(), Valid: order.PromotionCode() != ""},
		Status:                  string(order.Status()),
		Notes:                   spanner.NullString{StringVal: customer.Notes, Valid: customer.Notes != ""},
	}, nil
}

// dataToDTO converts database Data to the query DTO.
func (r *OrderRepo) dataToDTO(data *m_order.Data) (*contracts.OrderDTO, error) {
	subtotal, err := moneyString(data.SubtotalNumerator, data.SubtotalDenominator)
	if err != nil {
		return nil, err
	}
	discount, err := moneyString(data.DiscountNumerator, data.DiscountDenominator)
	if err != nil {
		return nil, err
	}
	deliveryCost, err := moneyString(data.DeliveryCostNumerator, data.DeliveryCostDenominator)
	if err != nil {
		return nil, err
	}
	total, err := moneyString(data.TotalNumerator, data.TotalDenominator)
	if err != nil {
		return nil, err
	}

	return &contracts.OrderDTO{
		OrderID:       data.OrderID,
		OrderNumber:   data.OrderNumber,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
		CustomerEmail: data.CustomerEmail.StringVal,
		DeliveryType:  data.DeliveryType,
		PaymentType:   data.PaymentType,
		Subtotal:      subtotal,
		Discount:      discount,
		DeliveryCost:  deliveryCost,
		Total:         total,
		PromotionCode: data.PromotionCode.StringVal,
		Status:        data.Status,
		CreatedAt:     data.CreatedAt,
	}, nil
}

func moneyString(numerator, denominator int64) (string, error) {
	m, err := pricing.NewMoney(numerator, denominator)
	if err != nil {
		return "", fmt.Errorf("invalid stored amount: %w", err)
	}
	return m.String(), nil
}
