package model

import (
	"time"

	commentModel "blogicum-backend/internal/domains/comment/model"
	"blogicum-backend/internal/domains/visibility"
)

// Post là bài viết. Category và Location là optional.
type Post struct {
	ID          int64
	Title       string
	Text        string
	PubDate     time.Time
	IsPublished bool
	AuthorID    int64
	LocationID  *int64
	CategoryID  *int64
	CreatedAt   time.Time

	// Eager-loaded khi đọc
	AuthorUsername string
	Category       *CategoryRef
	Location       *LocationRef
	CommentCount   int
}

type CategoryRef struct {
	ID          int64
	Title       string
	Slug        string
	IsPublished bool
}

type LocationRef struct {
	ID          int64
	Name        string
	IsPublished bool
}

// Subject trả về các field mà visibility gate cần
func (p *Post) Subject() visibility.Subject {
	s := visibility.Subject{
		AuthorID:  p.AuthorID,
		Published: p.IsPublished,
		PubDate:   p.PubDate,
	}
	if p.Category != nil {
		published := p.Category.IsPublished
		s.CategoryPublished = &published
	}
	return s
}

// ============================================================
// RESPONSES
// ============================================================

type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type CategorySummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type LocationSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PostResponse struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Text         string           `json:"text"`
	PubDate      time.Time        `json:"pub_date"`
	IsPublished  bool             `json:"is_published"`
	Author       Author           `json:"author"`
	Category     *CategorySummary `json:"category,omitempty"`
	Location     *LocationSummary `json:"location,omitempty"`
	CommentCount int              `json:"comment_count"`
	CreatedAt    time.Time        `json:"created_at"`
}

// ToResponse: location chưa publish thì không hiển thị
func (p *Post) ToResponse() PostResponse {
	resp := PostResponse{
		ID:           p.ID,
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate,
		IsPublished:  p.IsPublished,
		Author:       Author{ID: p.AuthorID, Username: p.AuthorUsername},
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
	if p.Category != nil {
		resp.Category = &CategorySummary{ID: p.Category.ID, Title: p.Category.Title, Slug: p.Category.Slug}
	}
	if p.Location != nil && p.Location.IsPublished {
		resp.Location = &LocationSummary{ID: p.Location.ID, Name: p.Location.Name}
	}
	return resp
}

func ToResponses(posts []*Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ToResponse())
	}
	return out
}

// PostDetailResponse là post kèm comments theo thứ tự thời gian
type PostDetailResponse struct {
	PostResponse
	Comments []commentModel.CommentResponse `json:"comments"`
}
