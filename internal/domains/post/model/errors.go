package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePostNotFound     = "PST001"
	ErrCodeRedirectToPost   = "PST002"
	ErrCodeUnauthenticated  = "PST003"
	ErrCodePageNotFound     = "PST004"
	ErrCodeCategoryNotFound = "PST005"
	ErrCodeProfileNotFound  = "PST006"
	ErrCodeInvalidReference = "PST007"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrRedirectToPost   = errors.New("only the author can edit this post")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrPageNotFound     = errors.New("page not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidReference = errors.New("referenced category or location does not exist")
)

// PostError custom error type
type PostError struct {
	Code    string
	Message string
	Err     error
	// PostID is set for ErrCodeRedirectToPost
	PostID int64
}

func (e *PostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PostError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewPostNotFoundError() *PostError {
	return &PostError{
		Code:    ErrCodePostNotFound,
		Message: "Post not found",
		Err:     ErrPostNotFound,
	}
}

// NewRedirectToPostError: non-author sửa post bị đưa về trang chi tiết
func NewRedirectToPostError(postID int64) *PostError {
	return &PostError{
		Code:    ErrCodeRedirectToPost,
		Message: "Only the author can edit this post",
		Err:     ErrRedirectToPost,
		PostID:  postID,
	}
}

func NewUnauthenticatedError() *PostError {
	return &PostError{
		Code:    ErrCodeUnauthenticated,
		Message: "Authentication required",
		Err:     ErrUnauthenticated,
	}
}

func NewPageNotFoundError() *PostError {
	return &PostError{
		Code:    ErrCodePageNotFound,
		Message: "Page not found",
		Err:     ErrPageNotFound,
	}
}

func NewCategoryNotFoundError() *PostError {
	return &PostError{
		Code:    ErrCodeCategoryNotFound,
		Message: "Category not found",
		Err:     ErrCategoryNotFound,
	}
}

func NewProfileNotFoundError() *PostError {
	return &PostError{
		Code:    ErrCodeProfileNotFound,
		Message: "Profile not found",
		Err:     ErrProfileNotFound,
	}
}

func NewInvalidReferenceError(field string) *PostError {
	return &PostError{
		Code:    ErrCodeInvalidReference,
		Message: fmt.Sprintf("%s does not exist", field),
		Err:     ErrInvalidReference,
	}
}
