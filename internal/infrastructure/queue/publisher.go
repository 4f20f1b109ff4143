package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"blogicum-backend/internal/metrics"
	"blogicum-backend/pkg/logger"
)

// Enqueuer is the part of *asynq.Client the publisher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// PublicationScheduler enqueues a TypePublishDue task for the moment a
// deferred post goes live.
type PublicationScheduler struct {
	client Enqueuer
}

func NewPublicationScheduler(client Enqueuer) *PublicationScheduler {
	return &PublicationScheduler{client: client}
}

func (s *PublicationScheduler) SchedulePublication(ctx context.Context, postID int64, at time.Time) error {
	task, err := NewPublishDueTask(postID, at)
	if err != nil {
		return err
	}

	info, err := s.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(at),
		asynq.TaskID(publishTaskID(postID, at)),
		asynq.Queue(QueuePublication),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		// Sửa post nhưng giữ nguyên pub_date → task đã có sẵn
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		metrics.ObservePublicationTask("failed")
		return fmt.Errorf("enqueue publication: %w", err)
	}

	metrics.ObservePublicationTask("scheduled")
	logger.Debug("publication scheduled", map[string]interface{}{
		"post_id": postID,
		"task_id": info.ID,
		"at":      at,
	})
	return nil
}
