package deactivate_promotion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/committer"
)

// Interactor handles the deactivate promotion use case.
type Interactor struct {
	repo      contracts.PromotionRepository
	committer *committer.Committer
	logger    *zap.Logger
}

// NewInteractor creates a new deactivate promotion interactor.
func NewInteractor(
	repo contracts.PromotionRepository,
	committer *committer.Committer,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		logger:    logger,
	}
}

// Execute flips the promotion's kill switch off. Deactivation takes
// effect on the next pricing read; quotes are never cached.
func (i *Interactor) Execute(ctx context.Context, promotionID string) error {
	// Existence check so callers get a not-found instead of a silent no-op.
	if _, err := i.repo.GetByID(ctx, promotionID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeactivateMut(promotionID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	i.logger.Info("promotion deactivated", zap.String("promotion_id", promotionID))
	return nil
}
