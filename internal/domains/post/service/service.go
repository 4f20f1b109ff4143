package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	categoryModel "blogicum-backend/internal/domains/category/model"
	commentModel "blogicum-backend/internal/domains/comment/model"
	locationModel "blogicum-backend/internal/domains/location/model"
	"blogicum-backend/internal/domains/post/model"
	"blogicum-backend/internal/domains/post/repository"
	userModel "blogicum-backend/internal/domains/user/model"
	"blogicum-backend/internal/domains/visibility"
	"blogicum-backend/internal/metrics"
	"blogicum-backend/internal/shared/feedcache"
	"blogicum-backend/internal/shared/pagination"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/logger"
)

type postService struct {
	repo       repository.PostRepository
	users      ProfileResolver
	categories CategoryResolver
	locations  LocationResolver
	comments   CommentLister
	feeds      *feedcache.FeedCache
	scheduler  PublicationScheduler
	now        func() time.Time
}

// NewPostService: feeds và scheduler có thể nil (tắt cache / không hẹn giờ)
func NewPostService(
	repo repository.PostRepository,
	users ProfileResolver,
	categories CategoryResolver,
	locations LocationResolver,
	comments CommentLister,
	feeds *feedcache.FeedCache,
	scheduler PublicationScheduler,
) ServiceInterface {
	return &postService{
		repo:       repo,
		users:      users,
		categories: categories,
		locations:  locations,
		comments:   comments,
		feeds:      feeds,
		scheduler:  scheduler,
		now:        time.Now,
	}
}

// =====================================================
// LISTS
// =====================================================

func (s *postService) ListPublic(ctx context.Context, page string) (*model.ListResult, error) {
	key := feedcache.IndexKey(page)

	var cached model.ListResult
	if s.feeds.Get(ctx, feedcache.FeedIndex, key, &cached) {
		return &cached, nil
	}

	result, err := s.list(ctx, repository.PostFilter{OnlyVisible: true, Now: s.now()}, page)
	if err != nil {
		return nil, err
	}

	s.feeds.Set(ctx, key, result)
	return result, nil
}

func (s *postService) ListByCategory(ctx context.Context, slug, page string) (*model.CategoryPage, error) {
	// Category luôn đọc từ DB; cache chỉ giữ danh sách post
	category, err := s.categories.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, categoryModel.ErrCategoryNotFound) {
			return nil, model.NewCategoryNotFoundError()
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	key := feedcache.CategoryKey(slug, page)

	var cached model.ListResult
	if s.feeds.Get(ctx, feedcache.FeedCategory, key, &cached) {
		return &model.CategoryPage{Category: category, ListResult: cached}, nil
	}

	categoryID := category.ID
	result, err := s.list(ctx, repository.PostFilter{
		CategoryID:  &categoryID,
		OnlyVisible: true,
		Now:         s.now(),
	}, page)
	if err != nil {
		return nil, err
	}

	s.feeds.Set(ctx, key, result)
	return &model.CategoryPage{Category: category, ListResult: *result}, nil
}

func (s *postService) ListByProfile(ctx context.Context, viewer visibility.Viewer, username, page string) (*model.ProfilePage, error) {
	owner, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			return nil, model.NewProfileNotFoundError()
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}

	authorID := owner.ID
	result, err := s.list(ctx, repository.PostFilter{
		AuthorID:    &authorID,
		OnlyVisible: !visibility.OwnsProfile(viewer, owner.ID),
		Now:         s.now(),
	}, page)
	if err != nil {
		return nil, err
	}

	return &model.ProfilePage{Profile: owner.ToProfile(), ListResult: *result}, nil
}

// list đếm, resolve trang rồi mới lấy đúng một trang
func (s *postService) list(ctx context.Context, filter repository.PostFilter, rawPage string) (*model.ListResult, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	page, err := pagination.Resolve(rawPage, total)
	if err != nil {
		return nil, model.NewPageNotFoundError()
	}

	filter.Limit = page.Limit()
	filter.Offset = page.Offset()

	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return &model.ListResult{
		Posts: model.ToResponses(posts),
		Meta:  page.Meta(),
	}, nil
}

// =====================================================
// DETAIL
// =====================================================

func (s *postService) GetReadable(ctx context.Context, viewer visibility.Viewer, postID int64) (*model.Post, error) {
	p, err := s.load(ctx, postID)
	if err != nil {
		return nil, err
	}
	// Hidden và không tồn tại phải trông giống hệt nhau
	if !visibility.CanRead(viewer, p.Subject(), s.now()) {
		return nil, model.NewPostNotFoundError()
	}
	return p, nil
}

func (s *postService) GetPost(ctx context.Context, viewer visibility.Viewer, postID int64) (*model.PostDetailResponse, error) {
	p, err := s.GetReadable(ctx, viewer, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &model.PostDetailResponse{
		PostResponse: p.ToResponse(),
		Comments:     commentModel.ToResponses(comments),
	}, nil
}

// =====================================================
// MUTATIONS
// =====================================================

func (s *postService) Create(ctx context.Context, viewer visibility.Viewer, req model.PostRequest) (*model.MutationResult, error) {
	if !viewer.IsAuthenticated() {
		return nil, s.deny(visibility.ActionCreate, visibility.DenialUnauthenticated, 0)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	p := &model.Post{AuthorID: viewer.UserID}
	req.Apply(p, s.now())

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			return nil, model.NewInvalidReferenceError("category or location")
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	created, err := s.load(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("post created", map[string]interface{}{
		"post_id":   created.ID,
		"author_id": created.AuthorID,
		"pub_date":  created.PubDate,
	})
	s.afterWrite(ctx, created)

	resp := created.ToResponse()
	return &model.MutationResult{Post: &resp, Redirect: response.ProfilePath(created.AuthorUsername)}, nil
}

func (s *postService) Update(ctx context.Context, viewer visibility.Viewer, postID int64, req model.PostRequest) (*model.MutationResult, error) {
	if !viewer.IsAuthenticated() {
		return nil, s.deny(visibility.ActionEdit, visibility.DenialUnauthenticated, postID)
	}

	p, err := s.load(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(viewer, p, visibility.ActionEdit); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	// pub_date / is_published bỏ trống khi sửa thì giữ nguyên giá trị cũ
	if req.PubDate == nil {
		pubDate := p.PubDate
		req.PubDate = &pubDate
	}
	if req.IsPublished == nil {
		isPublished := p.IsPublished
		req.IsPublished = &isPublished
	}
	req.Apply(p, s.now())

	if err := s.repo.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			return nil, model.NewPostNotFoundError()
		case errors.Is(err, model.ErrInvalidReference):
			return nil, model.NewInvalidReferenceError("category or location")
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	updated, err := s.load(ctx, postID)
	if err != nil {
		return nil, err
	}
	s.afterWrite(ctx, updated)

	resp := updated.ToResponse()
	return &model.MutationResult{Post: &resp, Redirect: response.PostPath(postID)}, nil
}

func (s *postService) Delete(ctx context.Context, viewer visibility.Viewer, postID int64) (string, error) {
	if !viewer.IsAuthenticated() {
		return "", s.deny(visibility.ActionDelete, visibility.DenialUnauthenticated, postID)
	}

	p, err := s.load(ctx, postID)
	if err != nil {
		return "", err
	}
	if err := s.authorize(viewer, p, visibility.ActionDelete); err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return "", model.NewPostNotFoundError()
		}
		return "", fmt.Errorf("delete post: %w", err)
	}

	logger.Info("post deleted", map[string]interface{}{
		"post_id":   postID,
		"author_id": p.AuthorID,
	})
	s.invalidateFeeds(ctx)

	return response.IndexPath, nil
}

func (s *postService) CheckMutation(ctx context.Context, viewer visibility.Viewer, postID int64, action visibility.Action) error {
	if !viewer.IsAuthenticated() {
		return s.deny(action, visibility.DenialUnauthenticated, postID)
	}
	if action == visibility.ActionCreate {
		return nil
	}

	p, err := s.load(ctx, postID)
	if err != nil {
		return err
	}
	return s.authorize(viewer, p, action)
}

// =====================================================
// HELPERS
// =====================================================

func (s *postService) load(ctx context.Context, postID int64) (*model.Post, error) {
	p, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (s *postService) authorize(viewer visibility.Viewer, p *model.Post, action visibility.Action) error {
	decision := visibility.AuthorizeMutation(viewer, visibility.Target{
		Entity:   visibility.EntityPost,
		Action:   action,
		AuthorID: p.AuthorID,
	})
	if decision.Allowed {
		return nil
	}
	return s.deny(action, decision.Denial, p.ID)
}

func (s *postService) deny(action visibility.Action, denial visibility.Denial, postID int64) error {
	metrics.ObserveDenial(string(visibility.EntityPost), string(action), string(denial))

	switch denial {
	case visibility.DenialUnauthenticated:
		return model.NewUnauthenticatedError()
	case visibility.DenialRedirect:
		return model.NewRedirectToPostError(postID)
	default:
		return model.NewPostNotFoundError()
	}
}

// checkReferences: category/location được chọn phải tồn tại
func (s *postService) checkReferences(ctx context.Context, req model.PostRequest) error {
	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, categoryModel.ErrCategoryNotFound) {
				return model.NewInvalidReferenceError("category")
			}
			return fmt.Errorf("check category: %w", err)
		}
	}
	if req.LocationID != nil {
		if _, err := s.locations.GetByID(ctx, *req.LocationID); err != nil {
			if errors.Is(err, locationModel.ErrLocationNotFound) {
				return model.NewInvalidReferenceError("location")
			}
			return fmt.Errorf("check location: %w", err)
		}
	}
	return nil
}

// afterWrite làm mới feed và hẹn giờ cho post có pub_date trong tương lai
func (s *postService) afterWrite(ctx context.Context, p *model.Post) {
	s.invalidateFeeds(ctx)

	if s.scheduler == nil || !p.PubDate.After(s.now()) {
		return
	}
	if err := s.scheduler.SchedulePublication(ctx, p.ID, p.PubDate); err != nil {
		logger.Warn("schedule publication failed", err, map[string]interface{}{
			"post_id":  p.ID,
			"pub_date": p.PubDate,
		})
	}
}

func (s *postService) invalidateFeeds(ctx context.Context) {
	if err := s.feeds.Invalidate(ctx); err != nil {
		logger.Warn("feed invalidation failed", err, nil)
	}
}
