package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"blogicum-backend/internal/infrastructure/queue"
	"blogicum-backend/internal/metrics"
	"blogicum-backend/pkg/logger"
)

// FeedInvalidator drops cached feed pages.
type FeedInvalidator interface {
	Invalidate(ctx context.Context) error
}

// PublishDueHandler runs when a deferred post reaches its pub_date. The post
// itself needs no change: visibility is computed against the clock. Only the
// cached feeds, built before the post was due, are stale.
func PublishDueHandler(feeds FeedInvalidator) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var p queue.PublishDuePayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			// Sai format payload, skip retry
			return fmt.Errorf("decode publish payload: %v: %w", err, asynq.SkipRetry)
		}

		if err := feeds.Invalidate(ctx); err != nil {
			metrics.ObservePublicationTask("failed")
			return err // Redis lỗi, retry lại
		}

		metrics.ObservePublicationTask("processed")
		logger.Info("post publication processed", map[string]interface{}{
			"post_id":  p.PostID,
			"pub_date": p.PubDate,
		})
		return nil
	}
}

// FeedSweepHandler làm mới toàn bộ feed cache theo lịch
func FeedSweepHandler(feeds FeedInvalidator) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		if err := feeds.Invalidate(ctx); err != nil {
			return err
		}
		logger.Debug("feed cache swept", nil)
		return nil
	}
}
