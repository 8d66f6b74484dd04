//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrMissingField)
	assert.NotEqual(t, ErrValidation, ErrGeneration)
	assert.NotEqual(t, ErrNotFound, ErrPermission)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "/home/dev/.gwa/config.yaml",
		Field:    "template.branch",
		Hint:     "Use a branch name",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /home/dev/.gwa/config.yaml")
	assert.Contains(t, output, "Field: template.branch")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Use a branch name")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "test message", Cause: ErrValidation}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestMissingRequiredFieldError(t *testing.T) {
	err := NewMissingField("project_name", "pass it as the first argument")

	assert.True(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, `missing required field "project_name": pass it as the first argument`, err.Error())

	var missing *MissingRequiredFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "project_name", missing.Field)
}

func TestValidationError(t *testing.T) {
	err := NewValidation("author_email", "must contain '@'")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "invalid author_email: must contain '@'", err.Error())

	wrapped := fmt.Errorf("resolving: %w", err)
	var verr *ValidationError
	require.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "author_email", verr.Field)
}

func TestGenerationFailedError(t *testing.T) {
	cause := errors.New("repository not found")
	err := NewGenerationFailed(cause)

	assert.True(t, errors.Is(err, ErrGeneration))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "repository not found")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "config file missing")

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "config file missing")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, "short", Message(&DetailError{Type: "x", Message: "short"}))
}
