package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCommentNotFound = "CMT001"
	ErrCodePostNotFound    = "CMT002"
	ErrCodeUnauthenticated = "CMT003"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrUnauthenticated = errors.New("authentication required")
)

type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

// NewCommentNotFoundError covers a missing comment, a comment of another
// post, and a comment the viewer does not own.
func NewCommentNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeCommentNotFound,
		Message: "Comment not found",
		Err:     ErrCommentNotFound,
	}
}

func NewPostNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodePostNotFound,
		Message: "Post not found",
		Err:     ErrPostNotFound,
	}
}

func NewUnauthenticatedError() *CommentError {
	return &CommentError{
		Code:    ErrCodeUnauthenticated,
		Message: "Authentication required",
		Err:     ErrUnauthenticated,
	}
}
