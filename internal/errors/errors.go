// Package errors provides sentinel errors and typed failures for the gwa CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file path or directory the error refers to (optional).
	Location string

	// Field is the configuration field name (optional).
	Field string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// MissingRequiredFieldError reports a required field with no computable default.
type MissingRequiredFieldError struct {
	Field string
	Hint  string
}

// Error implements the error interface.
func (e *MissingRequiredFieldError) Error() string {
	msg := fmt.Sprintf("missing required field %q", e.Field)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is match ErrMissingField.
func (e *MissingRequiredFieldError) Unwrap() error {
	return ErrMissingField
}

// NewMissingField creates a MissingRequiredFieldError with a corrective hint.
func NewMissingField(field, hint string) error {
	return &MissingRequiredFieldError{Field: field, Hint: hint}
}

// ValidationError reports a resolved value that failed its validator.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidation creates a ValidationError for field.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// GenerationFailedError wraps a Template Generator failure verbatim.
type GenerationFailedError struct {
	Cause error
}

// Error implements the error interface.
func (e *GenerationFailedError) Error() string {
	if e.Cause == nil {
		return "project generation failed"
	}
	return "project generation failed: " + e.Cause.Error()
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *GenerationFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrGeneration}
	}
	return []error{ErrGeneration, e.Cause}
}

// NewGenerationFailed wraps cause as a GenerationFailedError.
func NewGenerationFailed(cause error) error {
	return &GenerationFailedError{Cause: cause}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Message returns the human-readable message of err without wrapping noise.
// DetailError keeps its own multi-line layout.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var detail *DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
