package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogicum-backend/internal/shared/pagination"
)

// Redirect targets
const (
	// LoginPath là nơi client được chuyển tới khi cần đăng nhập
	LoginPath = "/api/v1/auth/login"
	IndexPath = "/api/v1/posts"
)

func PostPath(postID int64) string {
	return IndexPath + "/" + strconv.FormatInt(postID, 10)
}

func ProfilePath(username string) string {
	return "/api/v1/profile/" + username
}

type Response struct {
	Success  bool             `json:"success"`
	Data     interface{}      `json:"data,omitempty"`
	Error    *Error           `json:"error,omitempty"`
	Meta     *pagination.Meta `json:"meta,omitempty"`
	Redirect string           `json:"redirect,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta pagination.Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    &meta,
	})
}

// SuccessWithRedirect trả về kết quả của một mutation kèm URL client nên chuyển tới
func SuccessWithRedirect(c *gin.Context, statusCode int, data interface{}, redirect string) {
	c.Header("Location", redirect)
	c.JSON(statusCode, Response{
		Success:  true,
		Data:     data,
		Redirect: redirect,
	})
}

// SeeOther từ chối mềm: gửi client về trang đọc thay vì báo lỗi
func SeeOther(c *gin.Context, location string) {
	c.Header("Location", location)
	c.JSON(http.StatusSeeOther, Response{
		Success:  false,
		Redirect: location,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// ValidationError trả về lỗi theo từng field (details là validation.Errors)
func ValidationError(c *gin.Context, details interface{}) {
	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
}

// Unauthenticated luôn chỉ đường tới login
func Unauthenticated(c *gin.Context, message string) {
	c.Header("Location", LoginPath)
	c.JSON(http.StatusUnauthorized, Response{
		Success:  false,
		Error:    &Error{Code: "UNAUTHENTICATED", Message: message},
		Redirect: LoginPath,
	})
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
