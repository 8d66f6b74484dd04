// Package handoff passes a resolved configuration record to the external
// Template Generator.
package handoff

import (
	"context"
	"fmt"
	"os"
	"strconv"

	gerrors "github.com/gwa/cli/internal/errors"
	"github.com/gwa/cli/internal/output"
	"github.com/gwa/cli/internal/project"
)

// Default template location.
const (
	DefaultRepository = "https://github.com/Yrrrrrf/gwa.git"
	DefaultBranch     = "templatize-dev"
)

// Locator identifies the remote template.
type Locator struct {
	Repository string
	Branch     string
}

// DefaultLocator returns the stock GWA template location.
func DefaultLocator() Locator {
	return Locator{Repository: DefaultRepository, Branch: DefaultBranch}
}

// withDefaults fills empty parts of l from DefaultLocator.
func (l Locator) withDefaults() Locator {
	if l.Repository == "" {
		l.Repository = DefaultRepository
	}
	if l.Branch == "" {
		l.Branch = DefaultBranch
	}
	return l
}

// Request is everything a Generator needs to materialize one project.
type Request struct {
	Template    Locator
	Name        string
	Destination string
	Variables   map[string]string
	Overwrite   bool
}

// Generator materializes a template. It returns the path of the generated
// project.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Variables flattens a record into template variables. Booleans become
// "true" or "false"; every field is present.
func Variables(c project.Config) map[string]string {
	vars := make(map[string]string)
	for name, v := range c.Values() {
		switch v := v.(type) {
		case bool:
			vars[name] = strconv.FormatBool(v)
		default:
			vars[name] = fmt.Sprint(v)
		}
	}
	return vars
}

// Option configures a Handoff.
type Option func(*Handoff)

// WithLocator overrides the template location. Empty parts keep their
// defaults.
func WithLocator(l Locator) Option {
	return func(h *Handoff) {
		h.locator = l.withDefaults()
	}
}

// Handoff invokes a Generator with a resolved record.
type Handoff struct {
	gen     Generator
	locator Locator
}

// New creates a Handoff backed by gen.
func New(gen Generator, opts ...Option) *Handoff {
	h := &Handoff{gen: gen, locator: DefaultLocator()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Locator returns the template location this Handoff uses.
func (h *Handoff) Locator() Locator {
	return h.locator
}

// Request builds the generator request for c without running it.
func (h *Handoff) Request(c project.Config, destination string) Request {
	if destination == "" {
		destination = "."
	}
	return Request{
		Template:    h.locator,
		Name:        c.ProjectName,
		Destination: destination,
		Variables:   Variables(c),
		Overwrite:   true,
	}
}

// Generate creates destination if needed and runs the generator once.
// Any failure is returned as GenerationFailedError; nothing is retried or
// cleaned up.
func (h *Handoff) Generate(ctx context.Context, c project.Config, destination string) (string, error) {
	req := h.Request(c, destination)

	if err := os.MkdirAll(req.Destination, 0o755); err != nil {
		if os.IsPermission(err) {
			err = fmt.Errorf("%w: %w", gerrors.ErrPermission, err)
		}
		return "", gerrors.NewGenerationFailed(err)
	}

	output.Debug("invoking template generator",
		"repository", req.Template.Repository,
		"branch", req.Template.Branch,
		"name", req.Name,
		"destination", req.Destination,
	)

	path, err := h.gen.Generate(ctx, req)
	if err != nil {
		return "", gerrors.NewGenerationFailed(err)
	}
	return path, nil
}
