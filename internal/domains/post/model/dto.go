package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	categoryModel "blogicum-backend/internal/domains/category/model"
	userModel "blogicum-backend/internal/domains/user/model"
	"blogicum-backend/internal/shared/pagination"
)

// PostRequest dùng cho cả tạo và sửa post (PUT thay toàn bộ field).
// Khi tạo: PubDate rỗng nghĩa là "ngay bây giờ", IsPublished rỗng nghĩa là true.
// Khi sửa: field rỗng giữ giá trị đang lưu.
type PostRequest struct {
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	PubDate     *time.Time `json:"pub_date"`
	IsPublished *bool      `json:"is_published"`
	LocationID  *int64     `json:"location_id"`
	CategoryID  *int64     `json:"category_id"`
}

func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 256).Error("title must be at most 256 characters"),
			validation.By(notBlank("title")),
		),
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.By(notBlank("text")),
		),
		validation.Field(&r.LocationID, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&r.CategoryID, validation.NilOrNotEmpty, validation.Min(int64(1))),
	)
}

func notBlank(field string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_blank", field+" must not be blank")
		}
		return nil
	}
}

// Apply ghi các field của request vào post
func (r PostRequest) Apply(p *Post, now time.Time) {
	p.Title = strings.TrimSpace(r.Title)
	p.Text = r.Text
	p.PubDate = now
	if r.PubDate != nil {
		p.PubDate = *r.PubDate
	}
	p.IsPublished = true
	if r.IsPublished != nil {
		p.IsPublished = *r.IsPublished
	}
	p.LocationID = r.LocationID
	p.CategoryID = r.CategoryID
}

// ============================================================
// LIST RESULTS
// ============================================================

type ListResult struct {
	Posts []PostResponse  `json:"posts"`
	Meta  pagination.Meta `json:"meta"`
}

type CategoryPage struct {
	Category *categoryModel.Category `json:"category"`
	ListResult
}

type ProfilePage struct {
	Profile userModel.ProfileResponse `json:"profile"`
	ListResult
}

// MutationResult trả về post vừa ghi và nơi client nên chuyển tới
type MutationResult struct {
	Post     *PostResponse
	Redirect string
}
