package model

import "time"

// Category là chủ đề của post. Category chưa publish ẩn toàn bộ post của nó.
type Category struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary là dạng rút gọn nhúng trong post response
type Summary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

func (c *Category) ToSummary() Summary {
	return Summary{ID: c.ID, Title: c.Title, Slug: c.Slug}
}
