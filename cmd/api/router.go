package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogicum-backend/internal/shared/middleware"
	"blogicum-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.Metrics(),
		middleware.OptionalAuth(c.JWTManager),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupProfileRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupCatalogRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}

	v1.GET("/users/:username", c.UserHandler.Profile)
}

// ========================================
// PROFILE ROUTES
// ========================================
func setupProfileRoutes(v1 *gin.RouterGroup, c *container.Container) {
	profile := v1.Group("/profile")
	{
		profile.GET("/:username", c.PostHandler.ProfilePosts)
		profile.PUT("", middleware.RequireAuth(), c.UserHandler.UpdateProfile)
	}
}

// ========================================
// POST + COMMENT ROUTES
// ========================================
// Mutations không gắn RequireAuth: service tự trả Unauthenticated để
// mọi lần từ chối đều đi qua visibility engine (và được đếm trong metrics).
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.Index)
		posts.POST("", c.PostHandler.Create)
		posts.GET("/:post_id", c.PostHandler.Detail)
		posts.PUT("/:post_id", c.PostHandler.Update)
		posts.DELETE("/:post_id", c.PostHandler.Delete)

		posts.GET("/:post_id/comments", c.CommentHandler.List)
		posts.POST("/:post_id/comments", c.CommentHandler.Create)
		posts.PUT("/:post_id/comments/:comment_id", c.CommentHandler.Update)
		posts.DELETE("/:post_id/comments/:comment_id", c.CommentHandler.Delete)
	}

	v1.GET("/category/:category_slug", c.PostHandler.CategoryPosts)
}

// ========================================
// CATEGORY + LOCATION ROUTES
// ========================================
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/categories", c.CategoryHandler.List)
	v1.GET("/locations", c.LocationHandler.List)
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis (feed cache chỉ là tối ưu, không làm degraded)
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}
		if appCtx.DB != nil {
			health["pool"] = appCtx.DB.Stats()
		}

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}
