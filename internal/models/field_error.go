package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by a FieldError for an absent or null key.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidField is matched by a FieldError for a value of the wrong type or format.
	ErrInvalidField = errors.New("invalid field")
)

// FieldErrorKind tells why a payload field was rejected.
type FieldErrorKind string

const (
	FieldMissing FieldErrorKind = "missing"
	FieldType    FieldErrorKind = "type"
	FieldParse   FieldErrorKind = "parse"
)

// FieldError reports the first payload field that could not be turned into a Reading.
type FieldError struct {
	Field string
	Kind  FieldErrorKind
	Err   error
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case FieldMissing:
		return fmt.Sprintf("field %q is required", e.Field)
	case FieldType:
		return fmt.Sprintf("field %q must be a string", e.Field)
	default:
		return fmt.Sprintf("field %q is malformed: %v", e.Field, e.Err)
	}
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the sentinel for the error's kind.
func (e *FieldError) Is(target error) bool {
	switch target {
	case ErrMissingField:
		return e.Kind == FieldMissing
	case ErrInvalidField:
		return e.Kind == FieldType || e.Kind == FieldParse
	}
	return false
}
