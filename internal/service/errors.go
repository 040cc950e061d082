package service

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services. Handlers map these to response
// codes with errors.Is / errors.As.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrSlugExists         = errors.New("slug already exists")
	ErrCategoryInUse      = errors.New("category still has products")
	ErrFileTooLarge       = errors.New("file exceeds the size limit")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)

// ValidationError reports which submitted fields were missing or invalid.
// The field list goes back to the client verbatim.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// NewValidationError builds a ValidationError for the given fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
