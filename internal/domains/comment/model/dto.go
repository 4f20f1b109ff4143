package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CommentRequest dùng cho cả tạo và sửa comment
type CommentRequest struct {
	Text string `json:"text"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.By(notBlank),
		),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "text must not be blank")
	}
	return nil
}

// MutationResult là kết quả của tạo/sửa comment, kèm trang client nên chuyển tới
type MutationResult struct {
	Comment  *CommentResponse
	Redirect string
}
