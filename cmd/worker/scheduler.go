package main

import (
	"log"

	"blogicum-backend/internal/infrastructure/queue"
)

// asynqScheduler wraps queue.Scheduler
type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler creates and starts the periodic job scheduler
func setupScheduler(cfg *Config) *asynqScheduler {
	scheduler := queue.NewScheduler(cfg.RedisOpt, cfg.Worker)

	if err := scheduler.RegisterPeriodicJobs(); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

// Shutdown gracefully shuts down the scheduler
func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] ✓ Stopped")
}
