package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"blogicum-backend/internal/infrastructure/queue"
	"blogicum-backend/pkg/logger"
)

// asynqServer wraps asynq.Server
type asynqServer struct {
	*asynq.Server
}

// setupAsynqServer creates and starts the Asynq server
func setupAsynqServer(cfg *Config, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		cfg.RedisOpt,
		asynq.Config{
			Queues: map[string]int{
				queue.QueuePublication: 10,
				queue.QueueMaintenance: 1,
			},
			Concurrency: cfg.Worker.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("task failed: "+task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks (asynq ShutdownTimeout, 8s by default)
func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down...")
	s.Server.Shutdown()
	log.Println("[Worker] ✓ Gracefully stopped")
}
