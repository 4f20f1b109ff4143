package repository

import (
	"context"

	"blogicum-backend/internal/domains/comment/model"
)

type CommentRepository interface {
	// ListByPost trả về comments theo created_at ASC, id ASC
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)

	// GetByID trả về model.ErrCommentNotFound nếu không có
	GetByID(ctx context.Context, id int64) (*model.Comment, error)

	// Create locks the parent post for the duration of the insert and
	// returns model.ErrPostNotFound when the post is gone. It fills ID,
	// CreatedAt and AuthorUsername from the database.
	Create(ctx context.Context, c *model.Comment) error

	Update(ctx context.Context, c *model.Comment) error
	Delete(ctx context.Context, id int64) error
}
