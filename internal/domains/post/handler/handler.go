package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"blogicum-backend/internal/domains/post/model"
	"blogicum-backend/internal/domains/post/service"
	"blogicum-backend/internal/domains/visibility"
	"blogicum-backend/internal/shared/middleware"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/logger"
)

// =====================================================
// POST HANDLER
// =====================================================

type PostHandler struct {
	postService service.ServiceInterface
}

func NewPostHandler(postService service.ServiceInterface) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// parsePostID: id không hợp lệ được coi như không tồn tại
func parsePostID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(c, "Post not found")
		return 0, false
	}
	return id, true
}

// =====================================================
// READ ENDPOINTS
// =====================================================

// Index lists public posts
// GET /api/v1/posts?page=
func (h *PostHandler) Index(c *gin.Context) {
	result, err := h.postService.ListPublic(c.Request.Context(), c.Query("page"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Posts, result.Meta)
}

// CategoryPosts lists public posts of a published category
// GET /api/v1/category/:category_slug?page=
func (h *PostHandler) CategoryPosts(c *gin.Context) {
	result, err := h.postService.ListByCategory(c.Request.Context(), c.Param("category_slug"), c.Query("page"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"category": result.Category,
		"posts":    result.Posts,
	}, result.Meta)
}

// ProfilePosts shows a profile and its posts
// GET /api/v1/profile/:username?page=
func (h *PostHandler) ProfilePosts(c *gin.Context) {
	result, err := h.postService.ListByProfile(
		c.Request.Context(),
		middleware.ViewerFrom(c),
		c.Param("username"),
		c.Query("page"),
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"profile": result.Profile,
		"posts":   result.Posts,
	}, result.Meta)
}

// Detail shows one post with its comments
// GET /api/v1/posts/:post_id
func (h *PostHandler) Detail(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	detail, err := h.postService.GetPost(c.Request.Context(), middleware.ViewerFrom(c), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// =====================================================
// MUTATION ENDPOINTS
// =====================================================

// Create creates a post authored by the viewer
// POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBody(c, 0, visibility.ActionCreate, err)
		return
	}

	result, err := h.postService.Create(c.Request.Context(), middleware.ViewerFrom(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithRedirect(c, http.StatusCreated, result.Post, result.Redirect)
}

// Update edits a post; non-authors are sent back to the post
// PUT /api/v1/posts/:post_id
func (h *PostHandler) Update(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBody(c, postID, visibility.ActionEdit, err)
		return
	}

	result, err := h.postService.Update(c.Request.Context(), middleware.ViewerFrom(c), postID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithRedirect(c, http.StatusOK, result.Post, result.Redirect)
}

// Delete removes a post and its comments
// DELETE /api/v1/posts/:post_id
func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	redirect, err := h.postService.Delete(c.Request.Context(), middleware.ViewerFrom(c), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithRedirect(c, http.StatusOK, gin.H{"id": postID}, redirect)
}

// =====================================================
// ERROR MAPPING
// =====================================================

// rejectBody: body hỏng chỉ trả 400 sau khi viewer qua được bước phân quyền,
// anonymous vẫn về login và non-author vẫn về trang post
func (h *PostHandler) rejectBody(c *gin.Context, postID int64, action visibility.Action, bindErr error) {
	if err := h.postService.CheckMutation(c.Request.Context(), middleware.ViewerFrom(c), postID, action); err != nil {
		h.respondError(c, err)
		return
	}
	response.BadRequest(c, bindErr.Error())
}

func (h *PostHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationError(c, validationErrs)
		return
	}

	var postErr *model.PostError
	if errors.As(err, &postErr) {
		switch postErr.Code {
		case model.ErrCodeUnauthenticated:
			response.Unauthenticated(c, postErr.Message)
		case model.ErrCodeRedirectToPost:
			response.SeeOther(c, response.PostPath(postErr.PostID))
		default:
			response.ErrorResponse(c, mapPostError(postErr), postErr.Code, postErr.Message)
		}
		return
	}

	logger.Error("post request failed", err)
	response.InternalServerError(c, "Internal server error")
}

func mapPostError(err *model.PostError) int {
	switch err.Code {
	case model.ErrCodePostNotFound,
		model.ErrCodePageNotFound,
		model.ErrCodeCategoryNotFound,
		model.ErrCodeProfileNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidReference:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
