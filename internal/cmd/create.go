package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gwa/cli/internal/cmdtypes"
	"github.com/gwa/cli/internal/cmdutil"
	"github.com/gwa/cli/internal/config"
	gerrors "github.com/gwa/cli/internal/errors"
	"github.com/gwa/cli/internal/handoff"
	"github.com/gwa/cli/internal/output"
	"github.com/gwa/cli/internal/project"
	"github.com/gwa/cli/internal/prompt"
)

// FastTrackHint is shown when --yes is used without a project name.
const FastTrackHint = "In --yes mode, project name is required. e.g., `gwa create my-app -y`"

// createDeps are the seams create uses for I/O. Zero values select the
// terminal prompter and cargo-generate.
type createDeps struct {
	prompter  prompt.Prompter
	generator handoff.Generator
}

type createOptions struct {
	destination string
	yes         bool
	from        string
	dryRun      bool
	format      string

	fields    cmdutil.FieldFlags
	generator cmdutil.GeneratorFlags
}

// NewCreateCmd creates the create command.
func NewCreateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newCreateCmd(cfg, createDeps{})
}

func newCreateCmd(cfg *cmdtypes.GlobalConfig, deps createDeps) *cobra.Command {
	var opts createOptions

	c := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new project from the template",
		Long: `Create a new General Web App project.

Values not given as flags or in a --from file are asked for interactively,
with derived defaults offered. With --yes every missing value takes its
default and no questions are asked.

Examples:
  # Interactive
  gwa create

  # Fast-track with defaults
  gwa create my-app -y

  # Skip the desktop app and put the project under ./apps
  gwa create my-app -y --include-tauri-desktop=false -d ./apps

  # Show the variables that would be passed to the template
  gwa create my-app -y --dry-run -o table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, cfg, &opts, deps)
		},
	}

	c.Flags().StringVarP(&opts.destination, "destination", "d", ".", "Directory to create the project in")
	c.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Accept defaults for every value not given")
	c.Flags().StringVar(&opts.from, "from", "", "YAML or JSON file with field values (flags take precedence)")
	c.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Resolve and print the template variables without generating")
	c.Flags().StringVarP(&opts.format, "output", "o", "yaml",
		fmt.Sprintf("Dry-run output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	opts.fields.AddTo(c)
	opts.generator.AddTo(c)

	return c
}

func runCreate(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, opts *createOptions, deps createDeps) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := output.ParseOutputFormat(opts.format)
	if err != nil {
		return cmdutil.Fail("invalid output format", err)
	}

	explicit, err := explicitSource(c, args, opts)
	if err != nil {
		return cmdutil.Fail("reading parameters", err)
	}

	var record project.Config
	if opts.yes {
		record, err = fastTrack(explicit)
	} else {
		record, err = prompt.NewFlow(selectPrompter(c, deps)).Run(ctx, explicit)
	}
	if err != nil {
		return cmdutil.Fail("project configuration incomplete", err)
	}

	var globalCfg *config.Config
	if cfg != nil {
		globalCfg = cfg.Config
	}
	resolved := config.ResolveGenerator(opts.generator.Options(c), globalCfg)
	config.LogResolvedValues(resolved.Values())

	gen := deps.generator
	if gen == nil {
		gen = handoff.CargoGenerate{Binary: resolved.Binary.Value}
	}
	h := handoff.New(gen, handoff.WithLocator(handoff.Locator{
		Repository: resolved.Repository.Value,
		Branch:     resolved.Branch.Value,
	}))

	if opts.dryRun {
		return writeDryRun(c.OutOrStdout(), format, h.Request(record, opts.destination))
	}

	log := output.ProjectLogger(record.ProjectName)
	log.Info("generating project", "template", h.Locator().Repository, "branch", h.Locator().Branch)

	var path string
	err = output.RunWithSpinner(ctx, fmt.Sprintf("Generating %s", record.ProjectName), func(ctx context.Context) error {
		var genErr error
		path, genErr = h.Generate(ctx, record, opts.destination)
		return genErr
	})
	if err != nil {
		return cmdutil.Fail("project generation failed", err)
	}

	printSuccess(c.OutOrStdout(), record.ProjectName, path)
	return nil
}

// explicitSource layers the positional name over changed flags over the
// --from file.
func explicitSource(c *cobra.Command, args []string, opts *createOptions) (project.FieldSource, error) {
	src := project.Overlay{}

	if len(args) == 1 {
		src = append(src, project.MapSource{string(project.FieldProjectName): args[0]})
	}
	src = append(src, opts.fields.Source(c))

	if opts.from != "" {
		params, err := project.LoadParams(opts.from)
		if err != nil {
			return nil, err
		}
		output.Debug("loaded parameter file", "path", opts.from, "keys", len(params))
		src = append(src, params)
	}

	return src, nil
}

func fastTrack(explicit project.FieldSource) (project.Config, error) {
	spec, _ := project.Lookup(string(project.FieldProjectName))
	raw, ok := explicit.Lookup(project.FieldProjectName)
	if err := spec.CheckPresent(raw, ok); err != nil {
		return project.Config{}, gerrors.NewMissingField(string(project.FieldProjectName), FastTrackHint)
	}

	output.Info("Fast-track mode enabled (--yes). Using default values.")
	return project.Resolve(explicit)
}

// selectPrompter uses huh forms on a terminal and plain line prompts when
// stdin is piped.
func selectPrompter(c *cobra.Command, deps createDeps) prompt.Prompter {
	if deps.prompter != nil {
		return deps.prompter
	}
	if output.IsInputTTY() {
		return prompt.HuhPrompter{}
	}
	return prompt.NewLinePrompter(c.InOrStdin(), c.ErrOrStderr())
}

const maskedSecret = "********"

type dryRunResult struct {
	Template    string            `json:"template" yaml:"template"`
	Branch      string            `json:"branch" yaml:"branch"`
	Destination string            `json:"destination" yaml:"destination"`
	Variables   map[string]string `json:"variables" yaml:"variables"`
}

func writeDryRun(w io.Writer, format output.OutputFormat, req handoff.Request) error {
	vars := make(map[string]string, len(req.Variables))
	keys := make([]string, 0, len(req.Variables))
	for k, v := range req.Variables {
		if k == string(project.FieldDBOwnerPword) {
			v = maskedSecret
		}
		vars[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]output.KeyValue, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, output.KeyValue{Key: k, Value: vars[k]})
	}

	result := dryRunResult{
		Template:    req.Template.Repository,
		Branch:      req.Template.Branch,
		Destination: req.Destination,
		Variables:   vars,
	}

	return output.Write(w, format, result, rows)
}

func printSuccess(w io.Writer, name, path string) {
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Project %s created", output.StyleNoun.Render(name))))
	fmt.Fprintln(w, output.FormatLabel("Location", path))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  cd %s\n", name)
	fmt.Fprintln(w, "  Read README.md to get started")
}
