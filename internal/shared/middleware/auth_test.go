package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogicum-backend/internal/domains/visibility"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/jwt"
)

func newAuthRouter(tokens TokenValidator, protected bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), OptionalAuth(tokens))

	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, ViewerFrom(c))
	}
	if protected {
		router.GET("/me", RequireAuth(), handler)
	} else {
		router.GET("/me", handler)
	}
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOptionalAuth(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	token, _, err := manager.GenerateAccessToken(7, "bob")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   visibility.Viewer
	}{
		{"valid token", "Bearer " + token, visibility.Authenticated(7, "bob")},
		{"lowercase scheme", "bearer " + token, visibility.Authenticated(7, "bob")},
		{"no header", "", visibility.Anonymous()},
		{"wrong scheme", "Basic abc", visibility.Anonymous()},
		{"garbage token", "Bearer not-a-jwt", visibility.Anonymous()},
	}

	router := newAuthRouter(manager, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header)
			require.Equal(t, http.StatusOK, w.Code)

			var got visibility.Viewer
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	router := newAuthRouter(manager, true)

	t.Run("anonymous gets 401 with login redirect", func(t *testing.T) {
		w := doRequest(router, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, response.LoginPath, w.Header().Get("Location"))

		var body response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, response.LoginPath, body.Redirect)
		require.NotNil(t, body.Error)
		assert.Equal(t, "UNAUTHENTICATED", body.Error.Code)
	})

	t.Run("authenticated passes", func(t *testing.T) {
		token, _, err := manager.GenerateAccessToken(3, "carol")
		require.NoError(t, err)

		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestViewerFrom_DefaultsToAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.False(t, ViewerFrom(c).IsAuthenticated())

	c.Set(ContextKeyViewer, "not a viewer")
	assert.False(t, ViewerFrom(c).IsAuthenticated())
}
