package main

import (
	"context"

	"github.com/hibiken/asynq"

	"blogicum-backend/internal/infrastructure/queue"
	"blogicum-backend/internal/infrastructure/queue/handlers"
	"blogicum-backend/pkg/container"
)

type taskHandler func(ctx context.Context, t *asynq.Task) error

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	publishDue taskHandler
	feedSweep  taskHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		publishDue: handlers.PublishDueHandler(c.Feeds),
		feedSweep:  handlers.FeedSweepHandler(c.Feeds),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypePublishDue, h.publishDue)
	mux.HandleFunc(queue.TypeFeedSweep, h.feedSweep)
}
