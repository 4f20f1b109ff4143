package model

import (
	"errors"
	"fmt"
)

const (
	ErrCodeLocationNotFound = "LOC001"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationError struct {
	Code    string
	Message string
	Err     error
}

func (e *LocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

func NewLocationNotFoundError() *LocationError {
	return &LocationError{
		Code:    ErrCodeLocationNotFound,
		Message: "Location not found",
		Err:     ErrLocationNotFound,
	}
}
