package service

import (
	"context"
	"time"

	categoryModel "blogicum-backend/internal/domains/category/model"
	commentModel "blogicum-backend/internal/domains/comment/model"
	locationModel "blogicum-backend/internal/domains/location/model"
	"blogicum-backend/internal/domains/post/model"
	userModel "blogicum-backend/internal/domains/user/model"
	"blogicum-backend/internal/domains/visibility"
)

// =====================================================
// POST SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// ListPublic: trang index, chỉ post public, không có author bypass
	ListPublic(ctx context.Context, page string) (*model.ListResult, error)

	// ListByCategory: category không tồn tại hoặc chưa publish → NotFound
	ListByCategory(ctx context.Context, slug, page string) (*model.CategoryPage, error)

	// ListByProfile: chủ profile thấy mọi post của mình
	ListByProfile(ctx context.Context, viewer visibility.Viewer, username, page string) (*model.ProfilePage, error)

	// GetPost trả về post kèm comments; post bị ẩn với viewer → NotFound
	GetPost(ctx context.Context, viewer visibility.Viewer, postID int64) (*model.PostDetailResponse, error)

	// GetReadable loads a post the viewer may read, NotFound otherwise.
	GetReadable(ctx context.Context, viewer visibility.Viewer, postID int64) (*model.Post, error)

	Create(ctx context.Context, viewer visibility.Viewer, req model.PostRequest) (*model.MutationResult, error)
	Update(ctx context.Context, viewer visibility.Viewer, postID int64, req model.PostRequest) (*model.MutationResult, error)
	Delete(ctx context.Context, viewer visibility.Viewer, postID int64) (string, error)

	// CheckMutation chạy riêng bước phân quyền của Create/Update/Delete (postID bỏ qua khi create)
	CheckMutation(ctx context.Context, viewer visibility.Viewer, postID int64, action visibility.Action) error
}

// =====================================================
// DEPENDENCIES
// =====================================================

type ProfileResolver interface {
	GetByUsername(ctx context.Context, username string) (*userModel.User, error)
}

type CategoryResolver interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*categoryModel.Category, error)
	GetByID(ctx context.Context, id int64) (*categoryModel.Category, error)
}

type LocationResolver interface {
	GetByID(ctx context.Context, id int64) (*locationModel.Location, error)
}

// CommentLister trả comments theo created_at tăng dần
type CommentLister interface {
	ListByPost(ctx context.Context, postID int64) ([]*commentModel.Comment, error)
}

// PublicationScheduler enqueues work to run when a deferred post goes live.
type PublicationScheduler interface {
	SchedulePublication(ctx context.Context, postID int64, at time.Time) error
}
