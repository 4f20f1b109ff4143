package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	task *asynq.Task
	opts []asynq.Option
	err  error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	r.task = task
	r.opts = opts
	if r.err != nil {
		return nil, r.err
	}
	return &asynq.TaskInfo{ID: "id"}, nil
}

func optionValue(opts []asynq.Option, typ asynq.OptionType) interface{} {
	for _, o := range opts {
		if o.Type() == typ {
			return o.Value()
		}
	}
	return nil
}

func TestSchedulePublication(t *testing.T) {
	at := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	enq := &recordingEnqueuer{}

	err := NewPublicationScheduler(enq).SchedulePublication(context.Background(), 7, at)
	require.NoError(t, err)

	require.NotNil(t, enq.task)
	assert.Equal(t, TypePublishDue, enq.task.Type())

	var payload PublishDuePayload
	require.NoError(t, json.Unmarshal(enq.task.Payload(), &payload))
	assert.Equal(t, int64(7), payload.PostID)
	assert.True(t, at.Equal(payload.PubDate))

	assert.Equal(t, at, optionValue(enq.opts, asynq.ProcessAtOpt))
	assert.Equal(t, publishTaskID(7, at), optionValue(enq.opts, asynq.TaskIDOpt))
	assert.Equal(t, QueuePublication, optionValue(enq.opts, asynq.QueueOpt))
}

func TestSchedulePublication_DuplicateIsIgnored(t *testing.T) {
	enq := &recordingEnqueuer{err: asynq.ErrTaskIDConflict}

	err := NewPublicationScheduler(enq).SchedulePublication(context.Background(), 7, time.Now().Add(time.Hour))
	assert.NoError(t, err)
}

func TestSchedulePublication_EnqueueFailure(t *testing.T) {
	boom := errors.New("redis down")
	enq := &recordingEnqueuer{err: boom}

	err := NewPublicationScheduler(enq).SchedulePublication(context.Background(), 7, time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, boom)
}

func TestPublishTaskID_ChangesWithPubDate(t *testing.T) {
	at := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	assert.Equal(t, publishTaskID(1, at), publishTaskID(1, at))
	assert.NotEqual(t, publishTaskID(1, at), publishTaskID(1, at.Add(time.Minute)))
	assert.NotEqual(t, publishTaskID(1, at), publishTaskID(2, at))
}
