package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildList(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	author := int64(7)
	category := int64(3)

	t.Run("public feed", func(t *testing.T) {
		query, args := buildList(PostFilter{OnlyVisible: true, Now: now, Limit: 10})

		assert.Contains(t, query, "WHERE (p.is_published = TRUE AND (p.category_id IS NULL OR c.is_published = TRUE) AND p.pub_date <= $1)")
		assert.Contains(t, query, "ORDER BY p.pub_date DESC, p.id ASC LIMIT $2")
		assert.NotContains(t, query, "OFFSET")
		assert.Equal(t, []interface{}{now, 10}, args)
	})

	t.Run("category page with offset", func(t *testing.T) {
		query, args := buildList(PostFilter{CategoryID: &category, OnlyVisible: true, Now: now, Limit: 10, Offset: 20})

		assert.Contains(t, query, "WHERE p.category_id = $1 AND (p.is_published = TRUE")
		assert.Contains(t, query, "p.pub_date <= $2)")
		assert.Contains(t, query, "LIMIT $3 OFFSET $4")
		assert.Equal(t, []interface{}{category, now, 10, 20}, args)
	})

	t.Run("own profile skips predicate", func(t *testing.T) {
		query, args := buildList(PostFilter{AuthorID: &author, Limit: 10})

		assert.Contains(t, query, "WHERE p.author_id = $1 ORDER BY")
		assert.NotContains(t, query, "is_published = TRUE")
		assert.Equal(t, []interface{}{author, 10}, args)
	})
}

func TestBuildCount(t *testing.T) {
	now := time.Now()
	author := int64(1)

	query, args := buildCount(PostFilter{AuthorID: &author, OnlyVisible: true, Now: now, Limit: 10, Offset: 10})

	assert.Contains(t, query, "SELECT COUNT(*)")
	assert.Contains(t, query, "LEFT JOIN categories c")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, []interface{}{author, now}, args)

	query, args = buildCount(PostFilter{})
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}
