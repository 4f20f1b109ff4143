package repository

import (
	"fmt"
	"strings"

	"blogicum-backend/internal/domains/visibility"
)

// Aliases p (posts), c (categories), l (locations), u (users) are shared with
// visibility.DefaultPredicate.
const selectPosts = `
	SELECT
		p.id, p.title, p.text, p.pub_date, p.is_published,
		p.author_id, p.location_id, p.category_id, p.created_at,
		u.username,
		c.id, c.title, c.slug, c.is_published,
		l.id, l.name, l.is_published,
		(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id) AS comment_count
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN locations l ON l.id = p.location_id
`

const countPosts = `
	SELECT COUNT(*)
	FROM posts p
	LEFT JOIN categories c ON c.id = p.category_id
`

const orderPosts = ` ORDER BY p.pub_date DESC, p.id ASC`

// buildWhere dịch filter thành WHERE clause và args theo thứ tự placeholder
func buildWhere(f PostFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)

	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.AuthorID != nil {
		conditions = append(conditions, "p.author_id = "+next(*f.AuthorID))
	}
	if f.CategoryID != nil {
		conditions = append(conditions, "p.category_id = "+next(*f.CategoryID))
	}
	if f.OnlyVisible {
		conditions = append(conditions, visibility.DefaultPredicate.SQL(next(f.Now)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// buildList trả về câu SELECT đầy đủ (có ORDER BY, LIMIT, OFFSET)
func buildList(f PostFilter) (string, []interface{}) {
	where, args := buildWhere(f)
	query := selectPosts + where + orderPosts

	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}

func buildCount(f PostFilter) (string, []interface{}) {
	where, args := buildWhere(f)
	return countPosts + where, args
}
