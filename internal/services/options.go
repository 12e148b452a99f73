package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	categoryrepo "github.com/light-bringer/shop-pricing-service/internal/app/category/repo"
	"github.com/light-bringer/shop-pricing-service/internal/app/order/queries/get_order"
	orderrepo "github.com/light-bringer/shop-pricing-service/internal/app/order/repo"
	"github.com/light-bringer/shop-pricing-service/internal/app/order/usecases/create_order"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/queries/list_category_quotes"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/queries/quote_product"
	pricingrepo "github.com/light-bringer/shop-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/usecases/create_promotion"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/usecases/deactivate_promotion"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/committer"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/config"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/logging"
)

// ServiceOptions holds all wired application dependencies.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Logger        *zap.Logger

	CreatePromotion     *create_promotion.Interactor
	DeactivatePromotion *deactivate_promotion.Interactor
	CreateOrder         *create_order.Interactor

	QuoteProduct       *quote_product.Query
	ListCategoryQuotes *list_category_quotes.Query
	GetOrder           *get_order.Query
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config) (*ServiceOptions, error) {
	logger, err := logging.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	policy, err := cfg.PricingPolicy()
	if err != nil {
		return nil, err
	}

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	promotionRepo := pricingrepo.NewPromotionRepo(spannerClient, clk)
	productReader := pricingrepo.NewProductReader(spannerClient)
	categoryRepo := categoryrepo.NewCategoryRepo(spannerClient)
	orderRepo := orderrepo.NewOrderRepo(spannerClient)
	outboxRepo := orderrepo.NewOutboxRepo(spannerClient)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Logger:        logger,

		CreatePromotion:     create_promotion.NewInteractor(promotionRepo, comm, clk, logger),
		DeactivatePromotion: deactivate_promotion.NewInteractor(promotionRepo, comm, logger),
		CreateOrder: create_order.NewInteractor(
			productReader,
			promotionRepo,
			orderRepo,
			outboxRepo,
			comm,
			policy,
			clk,
			logger,
		),

		QuoteProduct:       quote_product.NewQuery(productReader, promotionRepo, clk),
		ListCategoryQuotes: list_category_quotes.NewQuery(categoryRepo, productReader, promotionRepo, clk),
		GetOrder:           get_order.NewQuery(orderRepo),
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.Logger != nil {
		_ = s.Logger.Sync()
	}
}
