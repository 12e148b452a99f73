package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/shop-pricing-service/internal/models/m_product"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/query"
)

var productColumns = []string{
	m_product.ProductID,
	m_product.Name,
	m_product.Slug,
	m_product.Description,
	m_product.SKU,
	m_product.Brand,
	m_product.PriceNumerator,
	m_product.PriceDenominator,
	m_product.OldPriceNumerator,
	m_product.OldPriceDenominator,
	m_product.CategoryID,
	m_product.InStock,
	m_product.IsActive,
	m_product.IsFeatured,
	m_product.CreatedAt,
	m_product.UpdatedAt,
}

// ProductReader implements read access to catalog products for pricing.
type ProductReader struct {
	client *spanner.Client
}

// NewProductReader creates a new ProductReader.
func NewProductReader(client *spanner.Client) contracts.ProductReader {
	return &ProductReader{client: client}
}

// GetSnapshot retrieves the pricing view of one product.
func (r *ProductReader) GetSnapshot(ctx context.Context, productID string) (*domain.ProductSnapshot, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, productColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return dataToSnapshot(&data)
}

// ListByCategories retrieves active products in any of the given categories.
func (r *ProductReader) ListByCategories(ctx context.Context, categoryIDs []string) ([]*domain.ProductSnapshot, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	stmt := query.From(m_product.TableName).
		Select(productColumns...).
		Where(query.In(m_product.CategoryID, categoryIDs)).
		Where(query.Eq(m_product.IsActive, true)).
		OrderBy(m_product.ProductID, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	snapshots := make([]*domain.ProductSnapshot, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		snapshot, err := dataToSnapshot(&data)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

// dataToSnapshot converts database Data to a pricing snapshot.
func dataToSnapshot(data *m_product.Data) (*domain.ProductSnapshot, error) {
	price, err := domain.NewMoney(data.PriceNumerator, data.PriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid product price: %w", err)
	}

	var oldPrice *domain.Money
	if data.OldPriceNumerator.Valid && data.OldPriceDenominator.Valid {
		oldPrice, err = domain.NewMoney(data.OldPriceNumerator.Int64, data.OldPriceDenominator.Int64)
		if err != nil {
			return nil, fmt.Errorf("invalid product old price: %w", err)
		}
	}

	categoryID := ""
	if data.CategoryID.Valid {
		categoryID = data.CategoryID.StringVal
	}

	return &domain.ProductSnapshot{
		ID:         data.ProductID,
		Name:       data.Name,
		Slug:       data.Slug,
		SKU:        data.SKU,
		Brand:      data.Brand,
		Price:      price,
		OldPrice:   oldPrice,
		CategoryID: categoryID,
		IsActive:   data.IsActive,
		InStock:    data.InStock,
		IsFeatured: data.IsFeatured,
	}, nil
}
