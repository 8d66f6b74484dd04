package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gwa/cli/internal/cmdtypes"
	"github.com/gwa/cli/internal/cmdutil"
	"github.com/gwa/cli/internal/config"
	gerrors "github.com/gwa/cli/internal/errors"
	"github.com/gwa/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new gwa configuration file",
		Long: `Create a new gwa configuration file with default values.

The configuration file is created at ~/.gwa/config.yaml by default.
Use --config or GWA_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, cfg, forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return cmdutil.Fail("config init failed", &gerrors.DetailError{
			Type:     "already exists",
			Message:  "config file already exists",
			Location: path,
			Hint:     "Use --force to overwrite it.",
		})
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdutil.Fail("config init failed",
			gerrors.Wrap(gerrors.ErrPermission, fmt.Sprintf("creating config directory: %v", err)))
	}

	if err := os.WriteFile(path, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return cmdutil.Fail("config init failed",
			gerrors.Wrap(gerrors.ErrPermission, fmt.Sprintf("writing config file: %v", err)))
	}

	output.Debug("wrote config file", "path", path)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created"))
	fmt.Fprintln(c.OutOrStdout(), output.FormatLabel("Location", path))
	return nil
}
