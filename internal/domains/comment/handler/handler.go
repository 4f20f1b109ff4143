package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"blogicum-backend/internal/domains/comment/model"
	"blogicum-backend/internal/domains/comment/service"
	"blogicum-backend/internal/domains/visibility"
	"blogicum-backend/internal/shared/middleware"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/logger"
)

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List returns the comments of a readable post
// GET /api/v1/posts/:post_id/comments
func (h *CommentHandler) List(c *gin.Context) {
	postID, ok := parseID(c, "post_id", "Post not found")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), middleware.ViewerFrom(c), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments)
}

// Create adds a comment to a post
// POST /api/v1/posts/:post_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := parseID(c, "post_id", "Post not found")
	if !ok {
		return
	}

	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBody(c, postID, 0, visibility.ActionCreate, err)
		return
	}

	result, err := h.commentService.Create(c.Request.Context(), middleware.ViewerFrom(c), postID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithRedirect(c, http.StatusCreated, result.Comment, result.Redirect)
}

// Update edits the viewer's own comment
// PUT /api/v1/posts/:post_id/comments/:comment_id
func (h *CommentHandler) Update(c *gin.Context) {
	postID, commentID, ok := parseIDs(c)
	if !ok {
		return
	}

	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBody(c, postID, commentID, visibility.ActionEdit, err)
		return
	}

	result, err := h.commentService.Update(c.Request.Context(), middleware.ViewerFrom(c), postID, commentID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithRedirect(c, http.StatusOK, result.Comment, result.Redirect)
}

// Delete removes the viewer's own comment
// DELETE /api/v1/posts/:post_id/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	postID, commentID, ok := parseIDs(c)
	if !ok {
		return
	}

	redirect, err := h.commentService.Delete(c.Request.Context(), middleware.ViewerFrom(c), postID, commentID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithRedirect(c, http.StatusOK, gin.H{"id": commentID}, redirect)
}

func parseID(c *gin.Context, param, notFound string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(c, notFound)
		return 0, false
	}
	return id, true
}

func parseIDs(c *gin.Context) (postID, commentID int64, ok bool) {
	if postID, ok = parseID(c, "post_id", "Post not found"); !ok {
		return 0, 0, false
	}
	if commentID, ok = parseID(c, "comment_id", "Comment not found"); !ok {
		return 0, 0, false
	}
	return postID, commentID, true
}

// rejectBody báo body hỏng chỉ khi viewer được phép thực hiện action
func (h *CommentHandler) rejectBody(c *gin.Context, postID, commentID int64, action visibility.Action, bindErr error) {
	if err := h.commentService.CheckMutation(c.Request.Context(), middleware.ViewerFrom(c), postID, commentID, action); err != nil {
		h.respondError(c, err)
		return
	}
	response.BadRequest(c, bindErr.Error())
}

func (h *CommentHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationError(c, validationErrs)
		return
	}

	var commentErr *model.CommentError
	if errors.As(err, &commentErr) {
		if commentErr.Code == model.ErrCodeUnauthenticated {
			response.Unauthenticated(c, commentErr.Message)
			return
		}
		response.ErrorResponse(c, mapCommentError(commentErr), commentErr.Code, commentErr.Message)
		return
	}

	logger.Error("comment request failed", err)
	response.InternalServerError(c, "Internal server error")
}

func mapCommentError(err *model.CommentError) int {
	switch err.Code {
	case model.ErrCodeCommentNotFound, model.ErrCodePostNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
