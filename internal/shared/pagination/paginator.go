package pagination

import (
	"errors"
	"strconv"
	"strings"
)

// PageSize là số bài viết trên một trang của mọi danh sách
const PageSize = 10

var ErrInvalidPage = errors.New("invalid page")

// Page là vị trí đã được resolve của một trang trong danh sách
type Page struct {
	Number int `json:"page"`
	Size   int `json:"limit"`
	Total  int `json:"total"`
}

// Resolve parses the raw "page" query value against the total row count.
// Empty means page 1 and "last" means the final page. Anything that is not a
// positive integer, or points past the final page, is ErrInvalidPage; page 1
// of an empty list is valid.
func Resolve(raw string, total int) (Page, error) {
	p := Page{Number: 1, Size: PageSize, Total: total}
	numPages := p.NumPages()

	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
	case "last":
		p.Number = numPages
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Page{}, ErrInvalidPage
		}
		p.Number = n
	}

	if p.Number > numPages {
		return Page{}, ErrInvalidPage
	}
	return p, nil
}

// NumPages luôn >= 1 (danh sách rỗng vẫn có 1 trang)
func (p Page) NumPages() int {
	if p.Total <= 0 {
		return 1
	}
	return (p.Total + p.Size - 1) / p.Size
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages()
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// Meta là phần pagination trả về cho client
type Meta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

func (p Page) Meta() Meta {
	return Meta{
		Page:        p.Number,
		Limit:       p.Size,
		Total:       p.Total,
		TotalPages:  p.NumPages(),
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}
