package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogicum-backend/internal/domains/category/model"
	"blogicum-backend/pkg/logger"
)

type postgresCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &postgresCategoryRepository{pool: pool}
}

const selectCategory = `
	SELECT id, title, description, slug, is_published, created_at
	FROM categories
`

func (r *postgresCategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return r.getOne(ctx, selectCategory+` WHERE slug = $1`, slug)
}

func (r *postgresCategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	return r.getOne(ctx, selectCategory+` WHERE id = $1`, id)
}

func (r *postgresCategoryRepository) getOne(ctx context.Context, query string, arg interface{}) (*model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Slug,
		&c.IsPublished,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		logger.Error("category lookup: database error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

func (r *postgresCategoryRepository) ListPublished(ctx context.Context) ([]*model.Category, error) {
	rows, err := r.pool.Query(ctx, selectCategory+` WHERE is_published = TRUE ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Slug, &c.IsPublished, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}
