package repository

import (
	"context"

	"blogicum-backend/internal/domains/category/model"
)

type CategoryRepository interface {
	// GetBySlug trả về model.ErrCategoryNotFound nếu không có
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)

	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// ListPublished lists published categories ordered by title
	ListPublished(ctx context.Context) ([]*model.Category, error)
}
