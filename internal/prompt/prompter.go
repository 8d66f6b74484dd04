// Package prompt asks the user for configuration fields that were not
// supplied up front.
package prompt

import (
	"context"

	"github.com/gwa/cli/internal/project"
)

// Prompt is a single question put to the user.
type Prompt struct {
	Field project.Field
	Title string

	// Default is the derived value used when the answer is empty.
	Default string

	Kind project.Kind
}

// Prompter renders prompts and reads answers. Implementations return the raw
// answer; an empty answer means "take the default". Validation happens in
// the Flow, which calls Reject before asking the same prompt again.
type Prompter interface {
	Ask(ctx context.Context, p Prompt) (string, error)
	Reject(p Prompt, err error)
}
