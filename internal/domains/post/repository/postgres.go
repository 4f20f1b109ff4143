package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogicum-backend/internal/domains/post/model"
	"blogicum-backend/pkg/logger"
)

const foreignKeyViolation = "23503"

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

// =====================================================
// READ
// =====================================================

func (r *postgresPostRepository) List(ctx context.Context, filter PostFilter) ([]*model.Post, error) {
	query, args := buildList(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("List posts: database error", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*model.Post, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

func (r *postgresPostRepository) Count(ctx context.Context, filter PostFilter) (int, error) {
	query, args := buildCount(filter)

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return total, nil
}

func (r *postgresPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, selectPosts+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// scanPost đọc một row của selectPosts; category/location là NULL khi không join được
func scanPost(row pgx.Row) (*model.Post, error) {
	var (
		p                 model.Post
		categoryID        *int64
		categoryTitle     *string
		categorySlug      *string
		categoryPublished *bool
		locationID        *int64
		locationName      *string
		locationPublished *bool
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Text, &p.PubDate, &p.IsPublished,
		&p.AuthorID, &p.LocationID, &p.CategoryID, &p.CreatedAt,
		&p.AuthorUsername,
		&categoryID, &categoryTitle, &categorySlug, &categoryPublished,
		&locationID, &locationName, &locationPublished,
		&p.CommentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}

	if categoryID != nil {
		p.Category = &model.CategoryRef{
			ID:          *categoryID,
			Title:       *categoryTitle,
			Slug:        *categorySlug,
			IsPublished: *categoryPublished,
		}
	}
	if locationID != nil {
		p.Location = &model.LocationRef{
			ID:          *locationID,
			Name:        *locationName,
			IsPublished: *locationPublished,
		}
	}
	return &p, nil
}

// =====================================================
// WRITE
// =====================================================

func (r *postgresPostRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (title, text, pub_date, is_published, author_id, location_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		p.Title,
		p.Text,
		p.PubDate,
		p.IsPublished,
		p.AuthorID,
		p.LocationID,
		p.CategoryID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrInvalidReference
		}
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postgresPostRepository) Update(ctx context.Context, p *model.Post) error {
	query := `
		UPDATE posts
		SET title = $2, text = $3, pub_date = $4, is_published = $5,
			location_id = $6, category_id = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Text,
		p.PubDate,
		p.IsPublished,
		p.LocationID,
		p.CategoryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrInvalidReference
		}
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// Delete: comments bị xóa theo ON DELETE CASCADE
func (r *postgresPostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
