// Package feedcache caches the viewer-independent post feeds (the index and
// category pages). Every post or comment write drops all of them at once.
package feedcache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blogicum-backend/internal/metrics"
	"blogicum-backend/pkg/cache"
	"blogicum-backend/pkg/logger"
)

const (
	keyPrefix = "feed:"

	FeedIndex    = "index"
	FeedCategory = "category"
)

// FeedCache is safe to use as a nil pointer; every call is then a miss or no-op.
type FeedCache struct {
	cache cache.Cache
	ttl   time.Duration
}

// New trả về nil khi ttl <= 0 (tắt cache)
func New(c cache.Cache, ttl time.Duration) *FeedCache {
	if c == nil || ttl <= 0 {
		return nil
	}
	return &FeedCache{cache: c, ttl: ttl}
}

// IndexKey: key của một trang index; page là giá trị query thô ("" = trang 1)
func IndexKey(page string) string {
	return keyPrefix + FeedIndex + ":" + normalizePage(page)
}

func CategoryKey(slug, page string) string {
	return fmt.Sprintf("%s%s:%s:%s", keyPrefix, FeedCategory, slug, normalizePage(page))
}

func normalizePage(page string) string {
	page = strings.TrimSpace(page)
	if page == "" {
		return "1"
	}
	return page
}

// Get đọc một trang đã cache vào dest. Lỗi cache được coi là miss.
func (f *FeedCache) Get(ctx context.Context, feed, key string, dest interface{}) bool {
	if f == nil {
		return false
	}

	found, err := f.cache.Get(ctx, key, dest)
	switch {
	case err != nil:
		logger.Warn("feed cache read failed", err, map[string]interface{}{"key": key})
		metrics.ObserveFeedCache(feed, "error")
		return false
	case !found:
		metrics.ObserveFeedCache(feed, "miss")
		return false
	default:
		metrics.ObserveFeedCache(feed, "hit")
		return true
	}
}

func (f *FeedCache) Set(ctx context.Context, key string, value interface{}) {
	if f == nil {
		return
	}
	if err := f.cache.Set(ctx, key, value, f.ttl); err != nil {
		logger.Warn("feed cache write failed", err, map[string]interface{}{"key": key})
	}
}

// Invalidate drops every cached feed page.
func (f *FeedCache) Invalidate(ctx context.Context) error {
	if f == nil {
		return nil
	}
	if err := f.cache.DeletePattern(ctx, keyPrefix+"*"); err != nil {
		return fmt.Errorf("invalidate feeds: %w", err)
	}
	return nil
}
