package prompt

import (
	"context"

	"github.com/gwa/cli/internal/output"
	"github.com/gwa/cli/internal/project"
)

// Flow walks the field table in order, asking for every field the caller
// did not supply explicitly.
type Flow struct {
	prompter Prompter
	steps    []project.FieldSpec
}

// NewFlow creates a Flow over the standard field table.
func NewFlow(p Prompter) *Flow {
	return &Flow{prompter: p, steps: project.Fields()}
}

// Run collects every field and returns the resolved record.
//
// Explicit values are taken without prompting but still validated; an
// invalid explicit value aborts. Prompted values that fail validation are
// reported through the Prompter and asked again. Host-only fields are never
// prompted. A Prompter error aborts the flow unchanged.
func (f *Flow) Run(ctx context.Context, explicit project.FieldSource) (project.Config, error) {
	if explicit == nil {
		explicit = project.MapSource{}
	}

	var (
		partial   project.Config
		confirmed = project.MapSource{}
	)

	for i := 0; i < len(f.steps); {
		if err := ctx.Err(); err != nil {
			return project.Config{}, err
		}

		spec := f.steps[i]

		if raw, ok := explicit.Lookup(spec.Name); ok {
			v, err := acceptExplicit(spec, raw)
			if err != nil {
				return project.Config{}, err
			}
			output.Debug("using explicit value", "field", spec.Name)
			spec.Set(&partial, v)
			confirmed[string(spec.Name)] = v
			i++
			continue
		}

		if spec.HostOnly {
			i++
			continue
		}

		p := Prompt{
			Field:   spec.Name,
			Title:   spec.Title,
			Default: spec.Default(partial),
			Kind:    spec.Kind,
		}

		answer, err := f.prompter.Ask(ctx, p)
		if err != nil {
			return project.Config{}, err
		}
		if answer == "" {
			answer = p.Default
		}

		v, err := spec.Accept(answer)
		if err != nil {
			f.prompter.Reject(p, err)
			continue
		}

		spec.Set(&partial, v)
		confirmed[string(spec.Name)] = v
		i++
	}

	return project.Resolve(confirmed)
}

func acceptExplicit(spec project.FieldSpec, raw any) (string, error) {
	if err := spec.CheckPresent(raw, true); err != nil {
		return "", err
	}
	return spec.Accept(raw)
}
