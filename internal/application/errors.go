package application

import (
	"errors"
	"fmt"

	"tally/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidIndex = domain.ErrIndexOutOfRange
	ErrLastList     = domain.ErrLastList
	ErrBlankName    = domain.ErrBlankName
	ErrOverflow     = domain.ErrOverflow
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a reference that matched no counter or list
type NotFoundError struct {
	Kind string
	Ref  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
