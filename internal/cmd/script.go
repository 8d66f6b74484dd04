package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gwa/cli/internal/cmdtypes"
	"github.com/gwa/cli/internal/cmdutil"
	"github.com/gwa/cli/internal/config"
	gerrors "github.com/gwa/cli/internal/errors"
	"github.com/gwa/cli/internal/handoff"
	"github.com/gwa/cli/internal/script"
	"github.com/gwa/cli/pkg/gwa"
)

// NewScriptCmd creates the script command.
func NewScriptCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newScriptCmd(cfg, nil)
}

func newScriptCmd(cfg *cmdtypes.GlobalConfig, gen handoff.Generator) *cobra.Command {
	var generatorFlags cmdutil.GeneratorFlags

	c := &cobra.Command{
		Use:   "script <file.star>",
		Short: "Scaffold projects from a Starlark script",
		Long: `Run a Starlark script that scaffolds one or more projects.

Builtins:
  create(project_name="my-app", ...)   create a project, never prompts
  create({"project_name": "my-app"})   same, from a dict
  defaults("my-app")                   the values create would use

Example:
  for name in ["api", "admin"]:
      create(project_name = name, destination = "./apps", include_tauri_desktop = False)`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runScript(c, args[0], cfg, generatorFlags.Options(c), gen)
		},
	}

	generatorFlags.AddTo(c)

	return c
}

func runScript(c *cobra.Command, file string, cfg *cmdtypes.GlobalConfig, genOpts config.GeneratorOptions, gen handoff.Generator) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return cmdutil.Fail("script not found",
				gerrors.NewNotFoundError("script file does not exist", file, ""))
		}
		return cmdutil.Fail("reading script", err)
	}

	var globalCfg *config.Config
	if cfg != nil {
		globalCfg = cfg.Config
	}
	resolved := config.ResolveGenerator(genOpts, globalCfg)
	config.LogResolvedValues(resolved.Values())

	if gen == nil {
		gen = handoff.CargoGenerate{Binary: resolved.Binary.Value}
	}
	opts := []gwa.Option{
		gwa.WithGenerator(gen),
		gwa.WithTemplate(resolved.Repository.Value, resolved.Branch.Value),
	}

	runner := script.NewRunner(func(ctx context.Context, params map[string]any) error {
		return gwa.Create(ctx, params, opts...)
	}, c.OutOrStdout())

	if err := runner.Run(ctx, file, nil); err != nil {
		return cmdutil.Fail("script failed", err)
	}
	return nil
}
