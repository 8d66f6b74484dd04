package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwa/cli/internal/cmdtypes"
	"github.com/gwa/cli/internal/config"
	gerrors "github.com/gwa/cli/internal/errors"
	"github.com/gwa/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the gwa configuration file",
		Long: `Validate the gwa configuration file against the built-in schema.

The command validates ~/.gwa/config.yaml by default.
Use --config or GWA_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		fmt.Fprintln(c.ErrOrStderr(), output.FormatCross("Config file is invalid"))
		var fieldErrs config.ValidationErrors
		if errors.As(err, &fieldErrs) {
			output.Error("config validation failed", "file", path)
			for _, e := range fieldErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &gerrors.ExitError{Err: err, Code: gerrors.ExitValidationError, Printed: true}
		}
		output.Error("config validation failed", "file", path, "error", err)
		return &gerrors.ExitError{Err: err, Code: gerrors.ExitCodeFromError(err), Printed: true}
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid"))
	fmt.Fprintln(c.OutOrStdout(), output.FormatLabel("Location", path))
	return nil
}
