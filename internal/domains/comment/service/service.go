package service

import (
	"context"
	"errors"
	"fmt"

	"blogicum-backend/internal/domains/comment/model"
	"blogicum-backend/internal/domains/comment/repository"
	postModel "blogicum-backend/internal/domains/post/model"
	"blogicum-backend/internal/domains/visibility"
	"blogicum-backend/internal/metrics"
	"blogicum-backend/internal/shared/feedcache"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/logger"
)

type commentService struct {
	repo  repository.CommentRepository
	posts PostReader
	feeds *feedcache.FeedCache
}

func NewCommentService(repo repository.CommentRepository, posts PostReader, feeds *feedcache.FeedCache) ServiceInterface {
	return &commentService{
		repo:  repo,
		posts: posts,
		feeds: feeds,
	}
}

func (s *commentService) ListByPost(ctx context.Context, viewer visibility.Viewer, postID int64) ([]model.CommentResponse, error) {
	if err := s.readablePost(ctx, viewer, postID); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return model.ToResponses(comments), nil
}

// =====================================================
// MUTATIONS
// =====================================================

func (s *commentService) Create(ctx context.Context, viewer visibility.Viewer, postID int64, req model.CommentRequest) (*model.MutationResult, error) {
	if !viewer.IsAuthenticated() {
		return nil, s.deny(visibility.ActionCreate, visibility.DenialUnauthenticated)
	}
	if err := s.readablePost(ctx, viewer, postID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &model.Comment{
		Text:     req.Text,
		PostID:   postID,
		AuthorID: viewer.UserID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}

	logger.Info("comment created", map[string]interface{}{
		"comment_id": c.ID,
		"post_id":    postID,
		"author_id":  viewer.UserID,
	})
	s.invalidateFeeds(ctx)

	resp := c.ToResponse()
	return &model.MutationResult{Comment: &resp, Redirect: response.PostPath(postID)}, nil
}

func (s *commentService) Update(ctx context.Context, viewer visibility.Viewer, postID, commentID int64, req model.CommentRequest) (*model.MutationResult, error) {
	c, err := s.loadOwned(ctx, viewer, postID, commentID, visibility.ActionEdit)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c.Text = req.Text
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			return nil, model.NewCommentNotFoundError()
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	s.invalidateFeeds(ctx)

	resp := c.ToResponse()
	return &model.MutationResult{Comment: &resp, Redirect: response.PostPath(postID)}, nil
}

func (s *commentService) Delete(ctx context.Context, viewer visibility.Viewer, postID, commentID int64) (string, error) {
	if _, err := s.loadOwned(ctx, viewer, postID, commentID, visibility.ActionDelete); err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			return "", model.NewCommentNotFoundError()
		}
		return "", fmt.Errorf("delete comment: %w", err)
	}

	logger.Info("comment deleted", map[string]interface{}{
		"comment_id": commentID,
		"post_id":    postID,
	})
	s.invalidateFeeds(ctx)

	return response.PostPath(postID), nil
}

func (s *commentService) CheckMutation(ctx context.Context, viewer visibility.Viewer, postID, commentID int64, action visibility.Action) error {
	if action != visibility.ActionCreate {
		_, err := s.loadOwned(ctx, viewer, postID, commentID, action)
		return err
	}
	if !viewer.IsAuthenticated() {
		return s.deny(visibility.ActionCreate, visibility.DenialUnauthenticated)
	}
	return s.readablePost(ctx, viewer, postID)
}

// =====================================================
// HELPERS
// =====================================================

// loadOwned trả về comment nếu nó thuộc postID và viewer là author
func (s *commentService) loadOwned(ctx context.Context, viewer visibility.Viewer, postID, commentID int64, action visibility.Action) (*model.Comment, error) {
	if !viewer.IsAuthenticated() {
		return nil, s.deny(action, visibility.DenialUnauthenticated)
	}

	c, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			return nil, model.NewCommentNotFoundError()
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c.PostID != postID {
		return nil, model.NewCommentNotFoundError()
	}

	decision := visibility.AuthorizeMutation(viewer, visibility.Target{
		Entity:   visibility.EntityComment,
		Action:   action,
		AuthorID: c.AuthorID,
	})
	if !decision.Allowed {
		return nil, s.deny(action, decision.Denial)
	}
	return c, nil
}

func (s *commentService) readablePost(ctx context.Context, viewer visibility.Viewer, postID int64) error {
	if _, err := s.posts.GetReadable(ctx, viewer, postID); err != nil {
		if errors.Is(err, postModel.ErrPostNotFound) {
			return model.NewPostNotFoundError()
		}
		return fmt.Errorf("get post: %w", err)
	}
	return nil
}

func (s *commentService) deny(action visibility.Action, denial visibility.Denial) error {
	metrics.ObserveDenial(string(visibility.EntityComment), string(action), string(denial))

	if denial == visibility.DenialUnauthenticated {
		return model.NewUnauthenticatedError()
	}
	return model.NewCommentNotFoundError()
}

func (s *commentService) invalidateFeeds(ctx context.Context) {
	if err := s.feeds.Invalidate(ctx); err != nil {
		logger.Warn("feed invalidation failed", err, nil)
	}
}
