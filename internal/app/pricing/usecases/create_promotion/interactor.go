package create_promotion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/committer"
)

// Request contains the data needed to create a promotion.
type Request struct {
	Code        string
	Name        string
	Description string
	Type        domain.PromotionType
	Scope       domain.PromotionScope
	Priority    int64
	Value       *domain.Money
	TargetIDs   []string
	StartsAt    *time.Time
	EndsAt      *time.Time
	IsActive    bool
}

// Interactor handles the create promotion use case.
type Interactor struct {
	repo      contracts.PromotionRepository
	committer *committer.Committer
	clock     clock.Clock
	logger    *zap.Logger
}

// NewInteractor creates a new create promotion interactor.
func NewInteractor(
	repo contracts.PromotionRepository,
	committer *committer.Committer,
	clock clock.Clock,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		clock:     clock,
		logger:    logger,
	}
}

// Execute validates and persists a new promotion, returning its id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	promotionID := uuid.New().String()
	now := i.clock.Now()

	promotion, err := domain.NewPromotion(
		promotionID,
		req.Code,
		req.Name,
		req.Description,
		req.Type,
		req.Scope,
		req.Priority,
		req.Value,
		req.TargetIDs,
		req.StartsAt,
		req.EndsAt,
		req.IsActive,
		now,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create promotion: %w", err)
	}

	plan := committer.NewPlan()

	mut, err := i.repo.InsertMut(promotion)
	if err != nil {
		return "", err
	}
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	i.logger.Info("promotion created",
		zap.String("promotion_id", promotion.ID()),
		zap.String("scope", string(promotion.Scope())),
		zap.String("type", string(promotion.Type())),
	)

	return promotion.ID(), nil
}
