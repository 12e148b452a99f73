package m_order

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the orders table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OrderID,
			OrderNumber,
			CustomerName,
			CustomerPhone,
			CustomerEmail,
			DeliveryType,
			DeliveryAddress,
			DeliveryCity,
			PaymentType,
			SubtotalNumerator,
			SubtotalDenominator,
			DiscountNumerator,
			DiscountDenominator,
			DeliveryCostNumerator,
			DeliveryCostDenominator,
			TotalNumerator,
			TotalDenominator,
			PromotionCode,
			Status,
			Notes,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.OrderID,
			data.OrderNumber,
			data.CustomerName,
			data.CustomerPhone,
			data.CustomerEmail,
			data.DeliveryType,
			data.DeliveryAddress,
			data.DeliveryCity,
			data.PaymentType,
			data.SubtotalNumerator,
			data.SubtotalDenominator,
			data.DiscountNumerator,
			data.DiscountDenominator,
			data.DeliveryCostNumerator,
			data.DeliveryCostDenominator,
			data.TotalNumerator,
			data.TotalDenominator,
			data.PromotionCode,
			data.Status,
			data.Notes,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific order fields.
func (m *Model) UpdateMut(orderID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, OrderID)
	values = append(values, orderID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}
