package model

import "time"

// Comment thuộc về một post; author được stamp từ viewer lúc tạo
type Comment struct {
	ID             int64
	Text           string
	PostID         int64
	AuthorID       int64
	AuthorUsername string
	CreatedAt      time.Time
}

type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type CommentResponse struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Text      string    `json:"text"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Text:      c.Text,
		Author:    Author{ID: c.AuthorID, Username: c.AuthorUsername},
		CreatedAt: c.CreatedAt,
	}
}

// ToResponses giữ nguyên thứ tự (created_at tăng dần)
func ToResponses(comments []*Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.ToResponse())
	}
	return out
}
