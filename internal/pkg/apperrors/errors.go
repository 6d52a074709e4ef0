package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflict")

	// Request errors
	ErrBadRequest = errors.New("bad request")
)

// Faculty errors
var (
	ErrFacultyNotFound           = fmt.Errorf("faculty: %w", ErrNotFound)
	ErrFacultyAlreadyExists      = errors.New("faculty with this name already exists")
	ErrAbbreviationAlreadyExists = errors.New("faculty with this abbreviation already exists")
	ErrFacultyHasMajors          = fmt.Errorf("faculty has associated majors: %w", ErrConflict)
)

// Major errors
var (
	ErrMajorNotFound   = fmt.Errorf("major: %w", ErrNotFound)
	ErrMajorHasMembers = fmt.Errorf("major has associated members: %w", ErrConflict)
)

// Member errors
var (
	ErrMemberNotFound    = fmt.Errorf("member: %w", ErrNotFound)
	ErrMemberHasRequests = fmt.Errorf("member has associated clearance requests: %w", ErrConflict)
)

// Clearance request errors
var (
	ErrClearanceNotFound = fmt.Errorf("clearance request: %w", ErrNotFound)
)

// ValidationError carries a field -> message mapping so callers can render
// per-field errors. Surfaced to HTTP clients as 422.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for a field. The first message per field wins.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
	return e
}

// HasErrors reports whether any field message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil returns the error itself when it carries messages, nil otherwise.
// Returning a plain nil avoids the typed-nil-in-interface trap at call sites.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
