// Package metrics exposes the Prometheus collectors of the blog backend:
// HTTP traffic, visibility denials, feed cache efficiency, publication jobs
// and the database pool.
package metrics

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blogicum"

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Visibility
	MutationsDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "visibility",
			Name:      "mutations_denied_total",
			Help:      "Mutations refused by the ownership policy, by entity, action and denial kind",
		},
		[]string{"entity", "action", "reason"},
	)

	// Feed cache
	FeedCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed_cache",
			Name:      "requests_total",
			Help:      "Public feed cache lookups by feed and result (hit, miss, error)",
		},
		[]string{"feed", "result"},
	)

	// Publication jobs
	PublicationTasks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "publication",
			Name:      "tasks_total",
			Help:      "Deferred publication tasks by stage (scheduled, processed, failed)",
		},
		[]string{"stage"},
	)

	// Database
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// ObserveDenial đếm một mutation bị từ chối
func ObserveDenial(entity, action, reason string) {
	MutationsDenied.WithLabelValues(entity, action, reason).Inc()
}

// ObserveFeedCache records a feed cache lookup result.
func ObserveFeedCache(feed, result string) {
	FeedCacheRequests.WithLabelValues(feed, result).Inc()
}

func ObservePublicationTask(stage string) {
	PublicationTasks.WithLabelValues(stage).Inc()
}

// PoolStats is the subset of pgxpool.Stat the collector reads.
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector publishes pool statistics on a fixed interval.
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider dùng cho test với provider giả
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop is safe to call more than once.
func (c *PoolStatsCollector) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
	c.wg.Wait()
}
