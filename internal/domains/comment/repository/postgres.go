package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogicum-backend/internal/domains/comment/model"
	"blogicum-backend/pkg/database"
	"blogicum-backend/pkg/logger"
)

const selectComments = `
	SELECT cm.id, cm.text, cm.post_id, cm.author_id, u.username, cm.created_at
	FROM comments cm
	JOIN users u ON u.id = cm.author_id
`

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	rows, err := r.pool.Query(ctx,
		selectComments+` WHERE cm.post_id = $1 ORDER BY cm.created_at ASC, cm.id ASC`,
		postID,
	)
	if err != nil {
		logger.Error("ListByPost comments: database error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	c, err := scanComment(r.pool.QueryRow(ctx, selectComments+` WHERE cm.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, err
	}
	return c, nil
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.Text, &c.PostID, &c.AuthorID, &c.AuthorUsername, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan comment: %w", err)
	}
	return &c, nil
}

func (r *postgresCommentRepository) Create(ctx context.Context, c *model.Comment) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// Giữ post trong suốt insert: post bị xóa song song → NotFound thay vì lỗi FK
		var postID int64
		err := tx.QueryRow(ctx, `SELECT id FROM posts WHERE id = $1 FOR SHARE`, c.PostID).Scan(&postID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrPostNotFound
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		// username đọc từ users, không lấy từ token (có thể cũ sau khi đổi tên)
		err = tx.QueryRow(ctx, `
			WITH inserted AS (
				INSERT INTO comments (text, post_id, author_id)
				VALUES ($1, $2, $3)
				RETURNING id, created_at, author_id
			)
			SELECT i.id, i.created_at, u.username
			FROM inserted i
			JOIN users u ON u.id = i.author_id
		`, c.Text, c.PostID, c.AuthorID).Scan(&c.ID, &c.CreatedAt, &c.AuthorUsername)
		if err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		return nil
	})
}

func (r *postgresCommentRepository) Update(ctx context.Context, c *model.Comment) error {
	result, err := r.pool.Exec(ctx, `UPDATE comments SET text = $1 WHERE id = $2`, c.Text, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
