package prompt

import (
	"context"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/gwa/cli/internal/output"
	"github.com/gwa/cli/internal/project"
)

// HuhPrompter asks each question as a one-field huh form. It needs a
// terminal on stdin.
type HuhPrompter struct {
	// Accessible switches huh to its screen-reader friendly mode.
	Accessible bool
}

// Ask implements Prompter.
func (h HuhPrompter) Ask(ctx context.Context, p Prompt) (string, error) {
	if p.Kind == project.KindBool {
		return h.confirm(ctx, p)
	}

	var answer string
	input := huh.NewInput().
		Title(p.Title).
		Value(&answer)

	if p.Kind == project.KindSecret {
		input = input.EchoMode(huh.EchoModePassword)
	} else if p.Default != "" {
		input = input.Placeholder(p.Default)
	}

	if err := h.run(ctx, input); err != nil {
		return "", err
	}
	return answer, nil
}

func (h HuhPrompter) confirm(ctx context.Context, p Prompt) (string, error) {
	answer, err := project.ParseBool(p.Default)
	if err != nil {
		answer = true
	}

	field := huh.NewConfirm().
		Title(p.Title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)

	if err := h.run(ctx, field); err != nil {
		return "", err
	}
	return strconv.FormatBool(answer), nil
}

func (h HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithAccessible(h.Accessible)
	return form.RunWithContext(ctx)
}

// Reject implements Prompter.
func (h HuhPrompter) Reject(p Prompt, err error) {
	output.Warn("invalid value, try again", "field", p.Field, "err", err)
}
