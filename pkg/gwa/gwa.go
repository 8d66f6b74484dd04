// Package gwa is the embeddable entry point for scaffolding a General Web
// App project from a host program or script.
//
// Create never prompts. Fields missing from params take their derived
// defaults; only project_name is required.
//
//	err := gwa.Create(ctx, map[string]any{
//		"project_name": "my-app",
//		"destination":  "./apps",
//	})
package gwa

import (
	"context"
	"fmt"

	gerrors "github.com/gwa/cli/internal/errors"
	"github.com/gwa/cli/internal/handoff"
	"github.com/gwa/cli/internal/project"
)

// DestinationKey is the params key for the output directory. It defaults
// to the current directory.
const DestinationKey = "destination"

// Generator materializes a project template. See handoff.Generator.
type Generator = handoff.Generator

// Option configures Create.
type Option func(*options)

type options struct {
	generator handoff.Generator
	locator   handoff.Locator
}

// WithGenerator replaces the cargo-generate backed generator.
func WithGenerator(g Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithTemplate overrides the template repository and branch. Empty values
// keep the defaults.
func WithTemplate(repository, branch string) Option {
	return func(o *options) {
		o.locator = handoff.Locator{Repository: repository, Branch: branch}
	}
}

// Create resolves params into a complete configuration and generates the
// project. Unknown keys, a missing project_name or an invalid value fail
// before the generator runs.
func Create(ctx context.Context, params map[string]any, opts ...Option) error {
	_, err := CreateProject(ctx, params, opts...)
	return err
}

// CreateProject is Create but also returns the generated project path.
func CreateProject(ctx context.Context, params map[string]any, opts ...Option) (string, error) {
	o := options{generator: handoff.CargoGenerate{}}
	for _, opt := range opts {
		opt(&o)
	}

	src := project.MapSource(params)
	if err := src.CheckKeys(DestinationKey); err != nil {
		return "", err
	}

	destination, err := destinationOf(params)
	if err != nil {
		return "", err
	}

	cfg, err := project.Resolve(src)
	if err != nil {
		return "", err
	}

	h := handoff.New(o.generator, handoff.WithLocator(o.locator))
	return h.Generate(ctx, cfg, destination)
}

func destinationOf(params map[string]any) (string, error) {
	raw, ok := params[DestinationKey]
	if !ok || raw == nil {
		return ".", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", gerrors.NewValidation(DestinationKey, fmt.Sprintf("must be a string, got %T", raw))
	}
	if s == "" {
		return ".", nil
	}
	return s, nil
}
