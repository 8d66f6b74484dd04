package cmdutil

import (
	"errors"
	"fmt"

	gerrors "github.com/gwa/cli/internal/errors"
	"github.com/gwa/cli/internal/output"
)

// PrintError logs err in a user-friendly form: the failing field and any
// corrective hint get their own key so they stand out.
func PrintError(msg string, err error) {
	var (
		missing *gerrors.MissingRequiredFieldError
		invalid *gerrors.ValidationError
		detail  *gerrors.DetailError
		genErr  *gerrors.GenerationFailedError
	)

	switch {
	case errors.As(err, &genErr):
		output.Error(msg, "error", gerrors.Message(genErr.Cause))
		var inner *gerrors.DetailError
		if errors.As(genErr.Cause, &inner) && inner.Hint != "" {
			output.Info(inner.Hint)
		}
	case errors.As(err, &missing):
		output.Error(msg, "field", missing.Field)
		if missing.Hint != "" {
			output.Info(missing.Hint)
		}
	case errors.As(err, &invalid):
		output.Error(msg, "field", invalid.Field, "reason", invalid.Reason)
	case errors.As(err, &detail):
		kv := []any{"error", detail.Message}
		if detail.Location != "" {
			kv = append(kv, "location", detail.Location)
		}
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Type), kv...)
		if detail.Hint != "" {
			output.Info(detail.Hint)
		}
	default:
		output.Error(msg, "error", gerrors.Message(err))
	}
}

// Fail prints err and returns it as an ExitError marked printed, with the
// exit code its sentinel maps to.
func Fail(msg string, err error) error {
	PrintError(msg, err)
	code := gerrors.ExitCodeFromError(err)
	output.Debug("command failed", "exit", code, "reason", gerrors.ExitCodeName(code))
	return &gerrors.ExitError{Err: err, Code: code, Printed: true}
}
