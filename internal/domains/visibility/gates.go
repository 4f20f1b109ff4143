package visibility

import (
	"fmt"
	"time"
)

// Subject là các field của một post quyết định việc hiển thị
type Subject struct {
	AuthorID          int64
	Published         bool
	CategoryPublished *bool // nil khi post không có category
	PubDate           time.Time
}

// IsPublic checks the three visibility gates: the post is published, its
// category (if any) is published, and its publication time has been reached.
func IsPublic(s Subject, now time.Time) bool {
	if !s.Published {
		return false
	}
	if s.CategoryPublished != nil && !*s.CategoryPublished {
		return false
	}
	return !s.PubDate.After(now)
}

// CanRead: author luôn đọc được bài của mình, bất kể gate nào
func CanRead(v Viewer, s Subject, now time.Time) bool {
	return v.Is(s.AuthorID) || IsPublic(s, now)
}

// OwnsProfile reports whether the viewer is looking at their own profile,
// in which case the profile listing skips the visibility gates.
func OwnsProfile(v Viewer, profileUserID int64) bool {
	return v.Is(profileUserID)
}

// ============================================================
// SQL RENDERING
// ============================================================

// Predicate renders IsPublic as a SQL boolean expression over a posts row
// joined (LEFT JOIN) to its category row.
type Predicate struct {
	PostAlias     string
	CategoryAlias string
}

// DefaultPredicate khớp với alias dùng trong post repository
var DefaultPredicate = Predicate{PostAlias: "p", CategoryAlias: "c"}

// SQL trả về biểu thức WHERE; nowParam là placeholder của thời điểm hiện tại (vd: "$3")
func (p Predicate) SQL(nowParam string) string {
	return fmt.Sprintf(
		"(%[1]s.is_published = TRUE AND (%[1]s.category_id IS NULL OR %[2]s.is_published = TRUE) AND %[1]s.pub_date <= %[3]s)",
		p.PostAlias, p.CategoryAlias, nowParam,
	)
}
