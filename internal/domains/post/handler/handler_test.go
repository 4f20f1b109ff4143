package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogicum-backend/internal/domains/post/model"
	"blogicum-backend/internal/domains/visibility"
	"blogicum-backend/internal/shared/middleware"
	"blogicum-backend/internal/shared/pagination"
	"blogicum-backend/internal/shared/response"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPublic(ctx context.Context, page string) (*model.ListResult, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListResult), args.Error(1)
}

func (m *MockPostService) ListByCategory(ctx context.Context, slug, page string) (*model.CategoryPage, error) {
	args := m.Called(ctx, slug, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryPage), args.Error(1)
}

func (m *MockPostService) ListByProfile(ctx context.Context, viewer visibility.Viewer, username, page string) (*model.ProfilePage, error) {
	args := m.Called(ctx, viewer, username, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProfilePage), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, viewer visibility.Viewer, postID int64) (*model.PostDetailResponse, error) {
	args := m.Called(ctx, viewer, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostDetailResponse), args.Error(1)
}

func (m *MockPostService) GetReadable(ctx context.Context, viewer visibility.Viewer, postID int64) (*model.Post, error) {
	args := m.Called(ctx, viewer, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, viewer visibility.Viewer, req model.PostRequest) (*model.MutationResult, error) {
	args := m.Called(ctx, viewer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MutationResult), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, viewer visibility.Viewer, postID int64, req model.PostRequest) (*model.MutationResult, error) {
	args := m.Called(ctx, viewer, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MutationResult), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, viewer visibility.Viewer, postID int64) (string, error) {
	args := m.Called(ctx, viewer, postID)
	return args.String(0), args.Error(1)
}

func (m *MockPostService) CheckMutation(ctx context.Context, viewer visibility.Viewer, postID int64, action visibility.Action) error {
	args := m.Called(ctx, viewer, postID, action)
	return args.Error(0)
}

func setupRouter(svc *MockPostService, viewer visibility.Viewer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyViewer, viewer)
		c.Next()
	})
	r.GET("/posts", h.Index)
	r.GET("/posts/:post_id", h.Detail)
	r.POST("/posts", h.Create)
	r.PUT("/posts/:post_id", h.Update)
	r.DELETE("/posts/:post_id", h.Delete)
	r.GET("/category/:category_slug", h.CategoryPosts)
	r.GET("/profile/:username", h.ProfilePosts)
	return r
}

func perform(r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	return performRaw(r, method, path, payload)
}

func performRaw(r *gin.Engine, method, path string, payload []byte) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestIndex(t *testing.T) {
	svc := new(MockPostService)
	svc.On("ListPublic", mock.Anything, "2").Return(&model.ListResult{
		Posts: []model.PostResponse{{ID: 11}},
		Meta:  pagination.Meta{Page: 2, Limit: 10, Total: 11, TotalPages: 2, HasPrevious: true},
	}, nil)
	svc.On("ListPublic", mock.Anything, "9").Return(nil, model.NewPageNotFoundError())
	r := setupRouter(svc, visibility.Anonymous())

	w, resp := perform(r, http.MethodGet, "/posts?page=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)

	w, resp = perform(r, http.MethodGet, "/posts?page=9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, model.ErrCodePageNotFound, resp.Error.Code)
}

func TestDetail(t *testing.T) {
	viewer := visibility.Authenticated(1, "alice")

	t.Run("hidden post is 404", func(t *testing.T) {
		svc := new(MockPostService)
		svc.On("GetPost", mock.Anything, viewer, int64(5)).Return(nil, model.NewPostNotFoundError())

		w, resp := perform(setupRouter(svc, viewer), http.MethodGet, "/posts/5", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, model.ErrCodePostNotFound, resp.Error.Code)
	})

	t.Run("malformed id is 404 without calling service", func(t *testing.T) {
		svc := new(MockPostService)
		w, _ := perform(setupRouter(svc, viewer), http.MethodGet, "/posts/abc", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCreate_RedirectsToProfile(t *testing.T) {
	viewer := visibility.Authenticated(1, "alice")
	svc := new(MockPostService)
	svc.On("Create", mock.Anything, viewer, model.PostRequest{Title: "t", Text: "x"}).Return(&model.MutationResult{
		Post:     &model.PostResponse{ID: 3},
		Redirect: "/api/v1/profile/alice",
	}, nil)

	w, resp := perform(setupRouter(svc, viewer), http.MethodPost, "/posts", map[string]string{"title": "t", "text": "x"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/profile/alice", w.Header().Get("Location"))
	assert.Equal(t, "/api/v1/profile/alice", resp.Redirect)
}

func TestUpdate_NonAuthorGetsSeeOther(t *testing.T) {
	viewer := visibility.Authenticated(2, "bob")
	svc := new(MockPostService)
	svc.On("Update", mock.Anything, viewer, int64(7), mock.Anything).Return(nil, model.NewRedirectToPostError(7))

	w, resp := perform(setupRouter(svc, viewer), http.MethodPut, "/posts/7", map[string]string{"title": "t", "text": "x"})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/v1/posts/7", w.Header().Get("Location"))
	assert.Equal(t, "/api/v1/posts/7", resp.Redirect)
	assert.False(t, resp.Success)
}

func TestDelete(t *testing.T) {
	t.Run("unauthenticated goes to login", func(t *testing.T) {
		svc := new(MockPostService)
		svc.On("Delete", mock.Anything, visibility.Anonymous(), int64(7)).Return("", model.NewUnauthenticatedError())

		w, resp := perform(setupRouter(svc, visibility.Anonymous()), http.MethodDelete, "/posts/7", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, response.LoginPath, resp.Redirect)
	})

	t.Run("owner is sent to the index", func(t *testing.T) {
		viewer := visibility.Authenticated(1, "alice")
		svc := new(MockPostService)
		svc.On("Delete", mock.Anything, viewer, int64(7)).Return("/api/v1/posts", nil)

		w, resp := perform(setupRouter(svc, viewer), http.MethodDelete, "/posts/7", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/api/v1/posts", resp.Redirect)
	})
}

func TestCategoryPosts_UnpublishedIs404(t *testing.T) {
	svc := new(MockPostService)
	svc.On("ListByCategory", mock.Anything, "drafts", "").Return(nil, model.NewCategoryNotFoundError())

	w, resp := perform(setupRouter(svc, visibility.Authenticated(1, "alice")), http.MethodGet, "/category/drafts", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, model.ErrCodeCategoryNotFound, resp.Error.Code)
}

func TestProfilePosts_PassesViewer(t *testing.T) {
	viewer := visibility.Authenticated(1, "alice")
	svc := new(MockPostService)
	svc.On("ListByProfile", mock.Anything, viewer, "alice", "").Return(&model.ProfilePage{
		ListResult: model.ListResult{Posts: []model.PostResponse{{ID: 1}, {ID: 2}}},
	}, nil)

	w, resp := perform(setupRouter(svc, viewer), http.MethodGet, "/profile/alice", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Len(t, data["posts"], 2)
	svc.AssertExpectations(t)
}

func TestMalformedBody_AuthorizationComesFirst(t *testing.T) {
	broken := []byte(`{"title": `)

	t.Run("anonymous create goes to login", func(t *testing.T) {
		svc := new(MockPostService)
		svc.On("CheckMutation", mock.Anything, visibility.Anonymous(), int64(0), visibility.ActionCreate).
			Return(model.NewUnauthenticatedError())

		w, resp := performRaw(setupRouter(svc, visibility.Anonymous()), http.MethodPost, "/posts", broken)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, response.LoginPath, resp.Redirect)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-author edit is redirected to the post", func(t *testing.T) {
		bob := visibility.Authenticated(2, "bob")
		svc := new(MockPostService)
		svc.On("CheckMutation", mock.Anything, bob, int64(7), visibility.ActionEdit).
			Return(model.NewRedirectToPostError(7))

		w, _ := performRaw(setupRouter(svc, bob), http.MethodPut, "/posts/7", broken)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/api/v1/posts/7", w.Header().Get("Location"))
	})

	t.Run("author gets bad request", func(t *testing.T) {
		alice := visibility.Authenticated(1, "alice")
		svc := new(MockPostService)
		svc.On("CheckMutation", mock.Anything, alice, int64(7), visibility.ActionEdit).Return(nil)

		w, resp := performRaw(setupRouter(svc, alice), http.MethodPut, "/posts/7", broken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
