package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Task types
const (
	// TypePublishDue chạy đúng lúc pub_date của một post hẹn giờ
	TypePublishDue = "post:publish_due"
	// TypeFeedSweep làm mới feed cache định kỳ
	TypeFeedSweep = "feed:sweep"
)

// Queue names
const (
	QueuePublication = "publication"
	QueueMaintenance = "maintenance"
)

// PublishDuePayload là payload của TypePublishDue
type PublishDuePayload struct {
	PostID  int64     `json:"post_id"`
	PubDate time.Time `json:"pub_date"`
}

func NewPublishDueTask(postID int64, pubDate time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(PublishDuePayload{PostID: postID, PubDate: pubDate})
	if err != nil {
		return nil, fmt.Errorf("marshal publish payload: %w", err)
	}
	return asynq.NewTask(TypePublishDue, payload), nil
}

// publishTaskID: một post chỉ có một task cho mỗi pub_date
func publishTaskID(postID int64, pubDate time.Time) string {
	return fmt.Sprintf("publish:%d:%d", postID, pubDate.Unix())
}
