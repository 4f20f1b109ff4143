package main

import (
	"log"

	"github.com/hibiken/asynq"

	"blogicum-backend/internal/config"
	"blogicum-backend/pkg/container"
)

// Config holds all configuration for the worker
type Config struct {
	RedisOpt asynq.RedisClientOpt
	Worker   config.WorkerConfig
}

// loadConfig derives the worker settings from the application config
func loadConfig(appCfg *config.Config) *Config {
	cfg := &Config{
		RedisOpt: container.RedisClientOpt(appCfg.Redis),
		Worker:   appCfg.Worker,
	}

	log.Printf("[Config] Redis: %s, concurrency: %d, feed sweep: %q",
		cfg.RedisOpt.Addr, cfg.Worker.Concurrency, cfg.Worker.SweepCron)

	return cfg
}
