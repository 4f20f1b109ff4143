package repository

import (
	"context"
	"time"

	"blogicum-backend/internal/domains/post/model"
)

// PostFilter chọn tập post cho một danh sách.
// OnlyVisible áp dụng visibility predicate tại thời điểm Now.
type PostFilter struct {
	AuthorID    *int64
	CategoryID  *int64
	OnlyVisible bool
	Now         time.Time
	Limit       int
	Offset      int
}

type PostRepository interface {
	// List trả về post theo pub_date DESC, id ASC, kèm comment_count
	List(ctx context.Context, filter PostFilter) ([]*model.Post, error)

	// Count bỏ qua Limit/Offset
	Count(ctx context.Context, filter PostFilter) (int, error)

	// GetByID không lọc visibility; trả về model.ErrPostNotFound nếu không có
	GetByID(ctx context.Context, id int64) (*model.Post, error)

	// Create gán ID và CreatedAt
	Create(ctx context.Context, p *model.Post) error

	Update(ctx context.Context, p *model.Post) error

	// Delete xóa post cùng comments của nó
	Delete(ctx context.Context, id int64) error
}
