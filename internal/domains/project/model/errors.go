package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeProjectNotFound = "PRJ001"
	ErrCodeSlugTaken       = "PRJ002"
	ErrCodeSlugExhausted   = "PRJ003"
	ErrCodeValidation      = "PRJ004"
)

// Errors
var (
	ErrProjectNotFound = errors.New("project not found")

	// ErrSlugTaken signals a storage-layer unique violation on the slug
	// column; the service retries with a new suffix.
	ErrSlugTaken = errors.New("slug already taken")

	// ErrSlugExhausted means the bounded retry count ran out
	ErrSlugExhausted = errors.New("could not allocate a unique slug")
)

// ProjectError custom error type
type ProjectError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProjectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProjectError) Unwrap() error {
	return e.Err
}

func NewProjectNotFoundError() *ProjectError {
	return &ProjectError{
		Code:    ErrCodeProjectNotFound,
		Message: "Project not found",
		Err:     ErrProjectNotFound,
	}
}

func NewSlugExhaustedError(title string) *ProjectError {
	return &ProjectError{
		Code:    ErrCodeSlugExhausted,
		Message: fmt.Sprintf("Could not allocate identifier for %q", title),
		Err:     ErrSlugExhausted,
	}
}
