package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDenial(t *testing.T) {
	initial := testutil.ToFloat64(MutationsDenied.WithLabelValues("post", "edit", "redirect"))

	ObserveDenial("post", "edit", "redirect")

	after := testutil.ToFloat64(MutationsDenied.WithLabelValues("post", "edit", "redirect"))
	assert.Equal(t, initial+1, after)
}

func TestObserveFeedCache(t *testing.T) {
	initialHit := testutil.ToFloat64(FeedCacheRequests.WithLabelValues("index", "hit"))
	initialMiss := testutil.ToFloat64(FeedCacheRequests.WithLabelValues("index", "miss"))

	ObserveFeedCache("index", "hit")
	ObserveFeedCache("index", "hit")
	ObserveFeedCache("index", "miss")

	assert.Equal(t, initialHit+2, testutil.ToFloat64(FeedCacheRequests.WithLabelValues("index", "hit")))
	assert.Equal(t, initialMiss+1, testutil.ToFloat64(FeedCacheRequests.WithLabelValues("index", "miss")))
}

func TestObservePublicationTask(t *testing.T) {
	initial := testutil.ToFloat64(PublicationTasks.WithLabelValues("scheduled"))
	ObservePublicationTask("scheduled")
	assert.Equal(t, initial+1, testutil.ToFloat64(PublicationTasks.WithLabelValues("scheduled")))
}

type fakeStats struct{ total, idle, acquired int32 }

func (f fakeStats) TotalConns() int32    { return f.total }
func (f fakeStats) IdleConns() int32     { return f.idle }
func (f fakeStats) AcquiredConns() int32 { return f.acquired }

type fakeProvider struct{ stats fakeStats }

func (p fakeProvider) Stat() PoolStats { return p.stats }

func TestPoolStatsCollector(t *testing.T) {
	collector := NewPoolStatsCollectorWithProvider(fakeProvider{stats: fakeStats{total: 8, idle: 5, acquired: 3}})
	collector.Start(time.Hour)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")) == 3
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, float64(8), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))

	collector.Stop()
	collector.Stop()
}
