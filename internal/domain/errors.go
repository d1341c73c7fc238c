package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling (OCP compliance).
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrGeneration is the stable prefix for failures of the external
	// generation call. The wrapped error carries the transport detail;
	// the action is abandoned and retried only by the user.
	ErrGeneration = errors.New("generation failed")
)

// TemplateBindingError indicates an instruction template referenced a
// placeholder with no bound value in the call context. This is an authoring
// bug in the variant catalog or its caller, not a runtime condition, and is
// never retried.
type TemplateBindingError struct {
	Placeholder string
}

func (e *TemplateBindingError) Error() string {
	return fmt.Sprintf("template placeholder %q has no bound value", e.Placeholder)
}

// StatusCode implements the HTTPError interface. Binding errors are server
// misconfiguration, not client input.
func (e *TemplateBindingError) StatusCode() int { return http.StatusInternalServerError }

// InvalidEnumValueError indicates a closed-set field was given a value
// outside its declared set.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("field %q: value %q is not one of [%s]",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// StatusCode implements the HTTPError interface
func (e *InvalidEnumValueError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against ErrValidation
func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrValidation
}
