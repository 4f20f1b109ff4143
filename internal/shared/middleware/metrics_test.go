package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"blogicum-backend/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Metrics())
	router.GET("/posts/:post_id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/posts/:post_id", "404"))
	inFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/12", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/posts/:post_id", "404")))
	assert.Equal(t, inFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))

	t.Run("unmatched routes share one label", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	})
}
