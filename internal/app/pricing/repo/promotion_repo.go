package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/shop-pricing-service/internal/models/m_promotion"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/query"
)

var promotionColumns = []string{
	m_promotion.PromotionID,
	m_promotion.Code,
	m_promotion.Name,
	m_promotion.Description,
	m_promotion.PromoType,
	m_promotion.Scope,
	m_promotion.Priority,
	m_promotion.ValueNumerator,
	m_promotion.ValueDenominator,
	m_promotion.TargetIDs,
	m_promotion.StartsAt,
	m_promotion.EndsAt,
	m_promotion.IsActive,
	m_promotion.CreatedAt,
}

// PromotionRepo implements PromotionRepository for Spanner.
type PromotionRepo struct {
	client *spanner.Client
	model  *m_promotion.Model
	clock  clock.Clock
}

// NewPromotionRepo creates a new PromotionRepo.
func NewPromotionRepo(client *spanner.Client, clk clock.Clock) contracts.PromotionRepository {
	return &PromotionRepo{
		client: client,
		model:  m_promotion.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a promotion.
func (r *PromotionRepo) InsertMut(promotion *domain.Promotion) (*spanner.Mutation, error) {
	value := promotion.Value()
	if !value.IsSafeForStorage() {
		return nil, fmt.Errorf("promotion value exceeds storage capacity: %w", domain.ErrInvalidPromotionValue)
	}

	data := &m_promotion.Data{
		PromotionID:      promotion.ID(),
		Code:             spanner.NullString{StringVal: promotion.Code(), Valid: promotion.Code() != ""},
		Name:             promotion.Name(),
		Description:      promotion.Description(),
		PromoType:        string(promotion.Type()),
		Scope:            string(promotion.Scope()),
		Priority:         promotion.Priority(),
		ValueNumerator:   value.Numerator(),
		ValueDenominator: value.Denominator(),
		TargetIDs:        promotion.TargetIDs(),
		IsActive:         promotion.IsActive(),
	}

	if startsAt := promotion.StartsAt(); startsAt != nil {
		data.StartsAt = spanner.NullTime{Time: *startsAt, Valid: true}
	}
	if endsAt := promotion.EndsAt(); endsAt != nil {
		data.EndsAt = spanner.NullTime{Time: *endsAt, Valid: true}
	}

	return r.model.InsertMut(data), nil
}

// DeactivateMut creates a mutation flipping the kill switch off.
func (r *PromotionRepo) DeactivateMut(promotionID string) *spanner.Mutation {
	return r.model.UpdateMut(promotionID, map[string]interface{}{
		m_promotion.IsActive: false,
	})
}

// GetByID retrieves a promotion by id.
func (r *PromotionRepo) GetByID(ctx context.Context, promotionID string) (*domain.Promotion, error) {
	row, err := r.client.Single().ReadRow(ctx, m_promotion.TableName, spanner.Key{promotionID}, promotionColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("failed to read promotion: %w", err)
	}

	var data m_promotion.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse promotion: %w", err)
	}

	return r.dataToDomain(&data)
}

// GetByCode retrieves a promotion by its checkout code.
func (r *PromotionRepo) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	stmt := query.From(m_promotion.TableName).
		Select(promotionColumns...).
		Where(query.Eq(m_promotion.Code, code)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query promotion by code: %w", err)
	}

	var data m_promotion.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse promotion: %w", err)
	}

	return r.dataToDomain(&data)
}

// ListAll retrieves every promotion. Effectiveness filtering stays in the
// domain so the engine and the store cannot disagree about "now".
func (r *PromotionRepo) ListAll(ctx context.Context) ([]*domain.Promotion, error) {
	stmt := query.From(m_promotion.TableName).
		Select(promotionColumns...).
		OrderBy(m_promotion.PromotionID, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	promotions := make([]*domain.Promotion, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list promotions: %w", err)
		}

		var data m_promotion.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse promotion: %w", err)
		}

		promotion, err := r.dataToDomain(&data)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, promotion)
	}

	return promotions, nil
}

// dataToDomain converts database Data to a domain Promotion.
func (r *PromotionRepo) dataToDomain(data *m_promotion.Data) (*domain.Promotion, error) {
	value, err := domain.NewMoney(data.ValueNumerator, data.ValueDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid promotion value: %w", err)
	}

	code := ""
	if data.Code.Valid {
		code = data.Code.StringVal
	}

	var startsAt, endsAt *time.Time
	if data.StartsAt.Valid {
		startsAt = &data.StartsAt.Time
	}
	if data.EndsAt.Valid {
		endsAt = &data.EndsAt.Time
	}

	return domain.ReconstructPromotion(
		data.PromotionID,
		code,
		data.Name,
		data.Description,
		domain.PromotionType(data.PromoType),
		domain.PromotionScope(data.Scope),
		data.Priority,
		value,
		data.TargetIDs,
		startsAt,
		endsAt,
		data.IsActive,
		data.CreatedAt,
	), nil
}
