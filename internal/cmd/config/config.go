// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/gwa/cli/internal/cmdtypes"
	"github.com/gwa/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the gwa CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config file path, falling back to the
// default location when the command runs without the root's pre-run.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg != nil && cfg.ConfigPath.Value != "" {
		return config.ExpandPath(cfg.ConfigPath.Value)
	}
	resolved, err := config.ResolveConfigPath("")
	if err != nil {
		return "", err
	}
	return config.ExpandPath(resolved.Value)
}
