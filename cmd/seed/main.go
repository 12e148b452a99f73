// Seeds the database with a small demo catalog: a category tree, a few
// products (one with a manual markdown) and a mix of automatic and coded
// promotions. Intended for the emulator and local development.
package main

import (
	"context"
	"log"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	categorydomain "github.com/light-bringer/shop-pricing-service/internal/app/category/domain"
	categoryrepo "github.com/light-bringer/shop-pricing-service/internal/app/category/repo"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	pricingrepo "github.com/light-bringer/shop-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/shop-pricing-service/internal/models/m_product"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/committer"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	if err := seed(ctx, client); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seed completed successfully")
}

func seed(ctx context.Context, client *spanner.Client) error {
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)
	categoryRepo := categoryrepo.NewCategoryRepo(client)
	promotionRepo := pricingrepo.NewPromotionRepo(client, clk)
	productModel := m_product.NewModel()

	plan := committer.NewPlan()

	// Category tree: household -> sponges, cloths
	householdID := uuid.New().String()
	spongesID := uuid.New().String()
	clothsID := uuid.New().String()

	categories := []*categorydomain.Category{
		{ID: householdID, Name: "Household", Slug: "household", SortOrder: 1, IsActive: true},
		{ID: spongesID, Name: "Sponges", Slug: "sponges", ParentID: householdID, SortOrder: 1, IsActive: true},
		{ID: clothsID, Name: "Cloths", Slug: "cloths", ParentID: householdID, SortOrder: 2, IsActive: true},
	}
	for _, category := range categories {
		plan.Add(categoryRepo.InsertMut(category))
	}

	products := []*m_product.Data{
		{
			ProductID:        uuid.New().String(),
			Name:             "Kitchen Sponge 5-pack",
			Slug:             "kitchen-sponge-5-pack",
			SKU:              "SP-001",
			Brand:            "CleanCo",
			PriceNumerator:   12900,
			PriceDenominator: 100,
			CategoryID:       spanner.NullString{StringVal: spongesID, Valid: true},
			InStock:          true,
			IsActive:         true,
		},
		{
			ProductID:        uuid.New().String(),
			Name:             "Microfiber Cloth Set",
			Slug:             "microfiber-cloth-set",
			SKU:              "CL-001",
			Brand:            "CleanCo",
			PriceNumerator:   24900,
			PriceDenominator: 100,
			CategoryID:       spanner.NullString{StringVal: clothsID, Valid: true},
			InStock:          true,
			IsActive:         true,
			IsFeatured:       true,
		},
		{
			// Manual markdown: promotions must not touch this one.
			ProductID:           uuid.New().String(),
			Name:                "Scrub Brush",
			Slug:                "scrub-brush",
			SKU:                 "BR-001",
			Brand:               "Scrubbers",
			PriceNumerator:      7500,
			PriceDenominator:    100,
			OldPriceNumerator:   spanner.NullInt64{Int64: 10000, Valid: true},
			OldPriceDenominator: spanner.NullInt64{Int64: 100, Valid: true},
			CategoryID:          spanner.NullString{StringVal: spongesID, Valid: true},
			InStock:             true,
			IsActive:            true,
		},
	}
	for _, product := range products {
		plan.Add(productModel.InsertMut(product))
	}

	now := clk.Now()
	endOfMonth := now.AddDate(0, 1, 0)

	tenPercent, err := domain.NewMoney(10, 1)
	if err != nil {
		return err
	}
	automatic, err := domain.NewPromotion(
		uuid.New().String(), "", "Household Sale", "10% off household goods",
		domain.PromotionPercent, domain.ScopeCategory, 1, tenPercent,
		[]string{householdID}, &now, &endOfMonth, true, now,
	)
	if err != nil {
		return err
	}

	fifty, err := domain.NewMoney(50, 1)
	if err != nil {
		return err
	}
	coded, err := domain.NewPromotion(
		uuid.New().String(), "WELCOME50", "Welcome Discount", "50.00 off your first order",
		domain.PromotionFixed, domain.ScopeAll, 0, fifty,
		nil, nil, nil, true, now,
	)
	if err != nil {
		return err
	}

	for _, promotion := range []*domain.Promotion{automatic, coded} {
		mut, err := promotionRepo.InsertMut(promotion)
		if err != nil {
			return err
		}
		plan.Add(mut)
	}

	log.Printf("Writing %d rows...", plan.Count())
	return comm.Apply(ctx, plan)
}
