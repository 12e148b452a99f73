package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/shop-pricing-service/internal/app/category/contracts"
	"github.com/light-bringer/shop-pricing-service/internal/app/category/domain"
	"github.com/light-bringer/shop-pricing-service/internal/models/m_category"
	"github.com/light-bringer/shop-pricing-service/internal/pkg/query"
)

// CategoryRepo implements CategoryRepository for Spanner.
type CategoryRepo struct {
	client *spanner.Client
	model  *m_category.Model
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(client *spanner.Client) contracts.CategoryRepository {
	return &CategoryRepo{
		client: client,
		model:  m_category.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a category.
func (r *CategoryRepo) InsertMut(category *domain.Category) *spanner.Mutation {
	data := &m_category.Data{
		CategoryID: category.ID,
		Name:       category.Name,
		Slug:       category.Slug,
		ParentID:   spanner.NullString{StringVal: category.ParentID, Valid: category.ParentID != ""},
		SortOrder:  category.SortOrder,
		IsActive:   category.IsActive,
	}
	return r.model.InsertMut(data)
}

// ListAll retrieves every category, ordered for stable tree building.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*domain.Category, error) {
	stmt := query.From(m_category.TableName).
		Select(
			m_category.CategoryID,
			m_category.Name,
			m_category.Slug,
			m_category.ParentID,
			m_category.SortOrder,
			m_category.IsActive,
		).
		OrderBy(m_category.SortOrder, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	categories := make([]*domain.Category, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}

		var data m_category.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse category: %w", err)
		}

		parentID := ""
		if data.ParentID.Valid {
			parentID = data.ParentID.StringVal
		}

		categories = append(categories, &domain.Category{
			ID:        data.CategoryID,
			Name:      data.Name,
			Slug:      data.Slug,
			ParentID:  parentID,
			SortOrder: data.SortOrder,
			IsActive:  data.IsActive,
		})
	}

	return categories, nil
}
