package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeUserNotFound       = "USR001"
	ErrCodeUsernameTaken      = "USR002"
	ErrCodeInvalidCredentials = "USR003"
	ErrCodeUnauthenticated    = "USR004"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
)

// UserError custom error type
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewUserNotFoundError() *UserError {
	return &UserError{
		Code:    ErrCodeUserNotFound,
		Message: "User not found",
		Err:     ErrUserNotFound,
	}
}

func NewUsernameTakenError(username string) *UserError {
	return &UserError{
		Code:    ErrCodeUsernameTaken,
		Message: fmt.Sprintf("Username %q is already taken", username),
		Err:     ErrUsernameTaken,
	}
}

func NewInvalidCredentialsError() *UserError {
	return &UserError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid username or password",
		Err:     ErrInvalidCredentials,
	}
}

func NewUnauthenticatedError() *UserError {
	return &UserError{
		Code:    ErrCodeUnauthenticated,
		Message: "Authentication required",
		Err:     ErrUnauthenticated,
	}
}
