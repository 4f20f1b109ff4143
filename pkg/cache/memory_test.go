package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "feed:index:1", map[string]int{"a": 1}, time.Minute))
	require.NoError(t, c.Set(ctx, "feed:category:x:1", []int{1, 2}, 0))
	require.NoError(t, c.Set(ctx, "user:1", "alice", 0))

	var got map[string]int
	found, err := c.Get(ctx, "feed:index:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, got["a"])

	t.Run("expires after ttl", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		found, err := c.Get(ctx, "feed:index:1", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete pattern keeps other keys", func(t *testing.T) {
		require.NoError(t, c.DeletePattern(ctx, "feed:*"))

		var ids []int
		found, _ := c.Get(ctx, "feed:category:x:1", &ids)
		assert.False(t, found)

		var name string
		found, _ = c.Get(ctx, "user:1", &name)
		assert.True(t, found)
		assert.Equal(t, "alice", name)
	})
}
