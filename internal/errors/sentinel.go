package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrMissingField indicates a required field was absent from every source.
	ErrMissingField = errors.New("missing required field")

	// ErrValidation indicates a value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrGeneration indicates the Template Generator failed.
	ErrGeneration = errors.New("generation failed")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file, binary or directory was not found.
	ErrNotFound = errors.New("not found")
)
