package model

import (
	"errors"
	"fmt"
)

const (
	ErrCodeCategoryNotFound = "CAT001"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryError struct {
	Code    string
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryNotFoundError dùng cho cả category không tồn tại lẫn chưa publish
func NewCategoryNotFoundError() *CategoryError {
	return &CategoryError{
		Code:    ErrCodeCategoryNotFound,
		Message: "Category not found",
		Err:     ErrCategoryNotFound,
	}
}
