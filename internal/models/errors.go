package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors shared by the repository and service layers. Handlers
// map them onto HTTP status codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidID          = errors.New("invalid identifier")
	ErrEmailTaken         = errors.New("email already registered")
	ErrDuplicateSKU       = errors.New("sku already in use")
	ErrDuplicateSlug      = errors.New("slug already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports every failing field of a candidate record, not
// just the first, so that forms can display all problems at once.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a failure for the named field. The first message wins if a
// field fails more than one rule.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
