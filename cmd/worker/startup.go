// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blogicum-backend/pkg/container"
)

// HealthChecker performs startup health checks
type HealthChecker struct {
	c *container.Container
}

// startServices performs health checks and starts the health endpoint
func startServices(c *container.Container, cfg *Config) error {
	log.Println("============================================")
	log.Println("🚀 Blogicum Worker Starting...")
	log.Println("============================================")

	checker := &HealthChecker{c: c}
	if err := checker.checkAll(); err != nil {
		log.Printf("❌ Health check failed: %v\n", err)
		return err
	}

	go startHealthCheckServer(cfg.Worker.HealthPort)

	return nil
}

// checkAll runs all health checks
func (h *HealthChecker) checkAll() error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"Redis Connection", h.checkRedis},
		{"Asynq Client", h.checkAsynq},
	}

	for _, check := range checks {
		log.Printf("⏳ Checking %s...\n", check.name)
		if err := check.fn(); err != nil {
			log.Printf("❌ %s: %v\n", check.name, err)
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Printf("✓ %s: OK\n", check.name)
	}

	return nil
}

// checkRedis: worker không chạy được nếu thiếu Redis
func (h *HealthChecker) checkRedis() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return h.c.Cache.Ping(ctx)
}

func (h *HealthChecker) checkAsynq() error {
	return h.c.AsynqClient.Ping()
}

// startHealthCheckServer serves /health and /ready for probes
func startHealthCheckServer(port string) {
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "blogicum-worker"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "READY"})
	})

	log.Printf("[Health] Starting health check server on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Printf("[Health] Failed to start: %v\n", err)
	}
}
