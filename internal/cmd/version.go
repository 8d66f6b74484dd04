package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwa/cli/internal/cmdtypes"
	"github.com/gwa/cli/internal/cmdutil"
	"github.com/gwa/cli/internal/config"
	"github.com/gwa/cli/internal/output"
	"github.com/gwa/cli/internal/version"
)

type versionReport struct {
	version.Info `yaml:",inline"`
	Generator    version.GeneratorInfo `json:"generator" yaml:"generator"`
}

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var formatFlag string

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show gwa CLI version information.

Displays:
  - gwa version, commit, and build date
  - the cargo-generate binary used for project generation`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVersion(c, cfg, formatFlag)
		},
	}

	c.Flags().StringVarP(&formatFlag, "output", "o", "", "Output format: yaml, json (default: text)")

	return c
}

func runVersion(c *cobra.Command, cfg *cmdtypes.GlobalConfig, formatFlag string) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var globalCfg *config.Config
	if cfg != nil {
		globalCfg = cfg.Config
	}
	binary := config.ResolveGenerator(config.GeneratorOptions{}, globalCfg).Binary.Value

	report := versionReport{
		Info:      version.Get(),
		Generator: version.DetectGenerator(ctx, binary),
	}

	w := c.OutOrStdout()
	if formatFlag == "" {
		fmt.Fprintln(w, report.Info.String())
		fmt.Fprintln(w, report.Generator.String())
		return nil
	}

	format, err := output.ParseOutputFormat(formatFlag)
	if err != nil {
		return cmdutil.Fail("invalid output format", err)
	}
	return output.Write(w, format, report, []output.KeyValue{
		{Key: "version", Value: report.Version},
		{Key: "commit", Value: report.GitCommit},
		{Key: "built", Value: report.BuildDate},
		{Key: "go", Value: report.GoVersion},
		{Key: "generator", Value: generatorSummary(report.Generator)},
	})
}

func generatorSummary(g version.GeneratorInfo) string {
	if !g.Found {
		return g.Binary + " (not found)"
	}
	return fmt.Sprintf("%s %s", g.Binary, g.Version)
}
