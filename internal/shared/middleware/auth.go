package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blogicum-backend/internal/domains/visibility"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/jwt"
	"blogicum-backend/pkg/logger"
)

const (
	// ContextKeyViewer giữ visibility.Viewer của request hiện tại
	ContextKeyViewer = "viewer"
	ContextKeyUserID = "user_id"
)

// TokenValidator is satisfied by *jwt.Manager.
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// OptionalAuth cho phép cả user đăng nhập lẫn anonymous.
// - Token hợp lệ → viewer là user trong token
// - Không có token hoặc token sai → viewer anonymous, không báo lỗi
func OptionalAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := visibility.Anonymous()

		if token, ok := bearerToken(c); ok {
			claims, err := tokens.ValidateAccessToken(token)
			if err != nil {
				logger.Debug("ignoring invalid bearer token", map[string]interface{}{
					"request_id": GetRequestID(c),
					"error":      err.Error(),
				})
			} else {
				viewer = visibility.Authenticated(claims.UserID, claims.Username)
				c.Set(ContextKeyUserID, claims.UserID)
			}
		}

		c.Set(ContextKeyViewer, viewer)
		c.Next()
	}
}

// RequireAuth chặn anonymous với 401 và đường dẫn tới login.
// Phải chạy sau OptionalAuth.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ViewerFrom(c).IsAuthenticated() {
			response.Unauthenticated(c, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ViewerFrom returns the viewer set by OptionalAuth, or an anonymous viewer.
func ViewerFrom(c *gin.Context) visibility.Viewer {
	v, exists := c.Get(ContextKeyViewer)
	if !exists {
		return visibility.Anonymous()
	}
	viewer, ok := v.(visibility.Viewer)
	if !ok {
		return visibility.Anonymous()
	}
	return viewer
}

// bearerToken extract token từ "Bearer <token>"
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
