package service

import (
	"context"

	"blogicum-backend/internal/domains/comment/model"
	postModel "blogicum-backend/internal/domains/post/model"
	"blogicum-backend/internal/domains/visibility"
)

// =====================================================
// COMMENT SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// ListByPost: post phải đọc được bởi viewer
	ListByPost(ctx context.Context, viewer visibility.Viewer, postID int64) ([]model.CommentResponse, error)

	Create(ctx context.Context, viewer visibility.Viewer, postID int64, req model.CommentRequest) (*model.MutationResult, error)

	// Update và Delete: comment của post khác hoặc của người khác → NotFound
	Update(ctx context.Context, viewer visibility.Viewer, postID, commentID int64, req model.CommentRequest) (*model.MutationResult, error)
	Delete(ctx context.Context, viewer visibility.Viewer, postID, commentID int64) (string, error)

	// CheckMutation chạy riêng bước phân quyền; commentID bỏ qua khi create
	CheckMutation(ctx context.Context, viewer visibility.Viewer, postID, commentID int64, action visibility.Action) error
}

// PostReader resolves a post the viewer is allowed to read. Posts the viewer
// cannot see are reported the same way as missing ones.
type PostReader interface {
	GetReadable(ctx context.Context, viewer visibility.Viewer, postID int64) (*postModel.Post, error)
}
