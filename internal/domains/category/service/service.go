package service

import (
	"context"
	"errors"
	"fmt"

	"blogicum-backend/internal/domains/category/model"
	"blogicum-backend/internal/domains/category/repository"
)

type ServiceInterface interface {
	// GetPublishedBySlug resolves a category page. An unpublished category
	// is reported as not found to every viewer, authors included.
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Category, error)

	// GetByID không lọc is_published; dùng để kiểm tra category_id của post
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	ListPublished(ctx context.Context) ([]*model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) ServiceInterface {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetPublishedBySlug(ctx context.Context, slug string) (*model.Category, error) {
	c, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	if !c.IsPublished {
		return nil, model.NewCategoryNotFoundError()
	}
	return c, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *categoryService) ListPublished(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func translate(err error) error {
	if errors.Is(err, model.ErrCategoryNotFound) {
		return model.NewCategoryNotFoundError()
	}
	return fmt.Errorf("get category: %w", err)
}
