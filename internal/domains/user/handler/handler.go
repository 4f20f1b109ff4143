package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"blogicum-backend/internal/domains/user/model"
	"blogicum-backend/internal/domains/user/service"
	"blogicum-backend/internal/shared/middleware"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/logger"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates an account
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	account, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, account)
}

// Login issues an access token
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Profile returns the public fields of a user
// GET /api/v1/users/:username
func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile edits the viewer's own profile
// PUT /api/v1/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	account, err := h.userService.UpdateProfile(c.Request.Context(), middleware.ViewerFrom(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithRedirect(c, http.StatusOK, account, response.ProfilePath(account.Username))
}

// =====================================================
// ERROR MAPPING
// =====================================================

func (h *UserHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationError(c, validationErrs)
		return
	}

	var userErr *model.UserError
	if errors.As(err, &userErr) {
		if userErr.Code == model.ErrCodeUnauthenticated {
			response.Unauthenticated(c, userErr.Message)
			return
		}
		response.ErrorResponse(c, mapUserError(userErr), userErr.Code, userErr.Message)
		return
	}

	logger.Error("user request failed", err)
	response.InternalServerError(c, "Internal server error")
}

func mapUserError(err *model.UserError) int {
	switch err.Code {
	case model.ErrCodeUserNotFound:
		return http.StatusNotFound
	case model.ErrCodeUsernameTaken:
		return http.StatusConflict
	case model.ErrCodeInvalidCredentials, model.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
