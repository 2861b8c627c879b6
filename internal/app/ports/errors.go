package ports

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrAlreadyExists = errors.New("already exists")
	ErrForbidden     = errors.New("forbidden")

	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIO                 = errors.New("i/o error")

	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrLimitReached         = errors.New("storage limit reached")
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field        string `json:"field"`
	Message      string `json:"message"`
	InvalidValue string `json:"invalidValue"`
}

// ValidationError collects field errors; it matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, message, invalidValue string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message, InvalidValue: invalidValue}}}
}

func (e *ValidationError) Add(field, message, invalidValue string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message, InvalidValue: invalidValue})
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// DuplicateEntityError names the unique-key fields that collided; it matches ErrAlreadyExists.
type DuplicateEntityError struct {
	Entity string
	Fields []FieldError
}

func (e *DuplicateEntityError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("%s already exists with the same %s", e.Entity, strings.Join(names, ", "))
}

func (e *DuplicateEntityError) Unwrap() error {
	return ErrAlreadyExists
}
