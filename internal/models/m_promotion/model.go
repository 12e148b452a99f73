package m_promotion

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the promotions table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a promotion.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			PromotionID,
			Code,
			Name,
			Description,
			PromoType,
			Scope,
			Priority,
			ValueNumerator,
			ValueDenominator,
			TargetIDs,
			StartsAt,
			EndsAt,
			IsActive,
			CreatedAt,
		},
		[]interface{}{
			data.PromotionID,
			data.Code,
			data.Name,
			data.Description,
			data.PromoType,
			data.Scope,
			data.Priority,
			data.ValueNumerator,
			data.ValueDenominator,
			data.TargetIDs,
			data.StartsAt,
			data.EndsAt,
			data.IsActive,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific promotion fields.
func (m *Model) UpdateMut(promotionID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, PromotionID)
	values = append(values, promotionID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a promotion.
func (m *Model) DeleteMut(promotionID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{promotionID})
}
