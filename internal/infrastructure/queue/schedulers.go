package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"blogicum-backend/internal/config"
	"blogicum-backend/pkg/logger"
)

// Scheduler đăng ký các job định kỳ (cron) của worker
type Scheduler struct {
	scheduler *asynq.Scheduler
	cfg       config.WorkerConfig
}

func NewScheduler(redisOpt asynq.RedisClientOpt, cfg config.WorkerConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		cfg:       cfg,
	}
}

func (s *Scheduler) RegisterPeriodicJobs() error {
	return s.registerFeedSweepJob()
}

// ================================================
// JOB: Feed Sweep
// ================================================
// Lưới an toàn cho TypePublishDue: task hẹn giờ có thể mất khi Redis bị
// flush, sweep giới hạn thời gian một post đến hạn vắng mặt khỏi feed.
func (s *Scheduler) registerFeedSweepJob() error {
	if s.cfg.SweepCron == "" {
		logger.Info("Feed sweep disabled", nil)
		return nil
	}

	_, err := s.scheduler.Register(
		s.cfg.SweepCron,
		asynq.NewTask(TypeFeedSweep, nil),
		asynq.Queue(QueueMaintenance),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register FeedSweep job", err)
		return err
	}

	logger.Info("✓ Registered FeedSweep", map[string]interface{}{"cron": s.cfg.SweepCron})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
