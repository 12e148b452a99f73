// Quotes products from the command line: one product by id, or every
// product in a category subtree. Useful for poking at promotion setups
// against the emulator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/config"
	"github.com/light-bringer/shop-pricing-service/internal/services"
)

var (
	productID  = flag.String("product", "", "Product ID to quote")
	categoryID = flag.String("category", "", "Category ID to quote (includes subcategories)")
)

func main() {
	flag.Parse()

	if (*productID == "") == (*categoryID == "") {
		log.Fatal("Error: exactly one of -product or -category is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	svc, err := services.NewServiceOptions(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire services: %v", err)
	}
	defer svc.Close()

	if *productID != "" {
		quote, err := svc.QuoteProduct.Execute(ctx, *productID)
		if err != nil {
			log.Fatalf("Quote failed: %v", err)
		}
		printQuote(quote)
		return
	}

	quotes, err := svc.ListCategoryQuotes.Execute(ctx, *categoryID)
	if err != nil {
		log.Fatalf("Quote failed: %v", err)
	}
	for _, quote := range quotes {
		printQuote(quote)
	}
}

func printQuote(quote *contracts.QuoteDTO) {
	line := fmt.Sprintf("%s  %s  %s", quote.ProductID, quote.SKU, quote.FinalPrice)
	if quote.DiscountPercent != nil {
		was := quote.BasePrice
		if quote.OldPrice != nil {
			was = *quote.OldPrice
		}
		line += fmt.Sprintf("  (-%d%%, was %s)", *quote.DiscountPercent, was)
	}
	if quote.PromotionName != nil {
		line += fmt.Sprintf("  [%s]", *quote.PromotionName)
	}
	fmt.Println(line)
}
