package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")

	// ErrUnsupportedType marks a configuration error: an attribute was
	// declared with a type tag outside the supported catalogue.
	ErrUnsupportedType = errors.New("unsupported attribute type")

	// ErrSealed is returned when a schema is changed after objects exist.
	ErrSealed = errors.New("schema sealed")

	// ErrCoercion marks a rejected write. The attribute keeps its previous
	// value. ErrMalformed and ErrZoneRequired both wrap it.
	ErrCoercion = errors.New("coercion failed")

	// ErrMalformed is a parse failure of the raw input.
	ErrMalformed = fmt.Errorf("%w: malformed input", ErrCoercion)

	// ErrZoneRequired is returned for zoned time attributes when no ambient
	// time zone is configured. It is raised before any parsing is attempted.
	ErrZoneRequired = fmt.Errorf("%w: ambient time zone required", ErrCoercion)
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError names the kind and key of a missing entity.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q %s", e.Kind, e.Key, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
