// Package cmdutil provides shared command utilities: flag groups that feed
// the configuration resolver, and error reporting.
package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gwa/cli/internal/config"
	"github.com/gwa/cli/internal/project"
)

// FlagName returns the CLI flag for a field, e.g. db_owner_admin ->
// db-owner-admin.
func FlagName(field project.Field) string {
	return strings.ReplaceAll(string(field), "_", "-")
}

// FieldFlags registers one flag per configuration field except the project
// name (a positional argument) and host-only fields.
type FieldFlags struct {
	text  map[project.Field]*string
	bools map[project.Field]*bool
}

// AddTo registers the field flags on the given cobra command.
func (f *FieldFlags) AddTo(cmd *cobra.Command) {
	f.text = make(map[project.Field]*string)
	f.bools = make(map[project.Field]*bool)

	for _, spec := range project.Fields() {
		if spec.Required || spec.HostOnly {
			continue
		}
		name := FlagName(spec.Name)

		if spec.Kind == project.KindBool {
			f.bools[spec.Name] = cmd.Flags().Bool(name, true, spec.Title)
			continue
		}
		f.text[spec.Name] = cmd.Flags().String(name, "", spec.Title)
	}
}

// Source returns a FieldSource holding only the flags the user set.
// Explicitly empty values are kept.
func (f *FieldFlags) Source(cmd *cobra.Command) project.FieldSource {
	return FlagSource{flags: cmd.Flags()}
}

// FlagSource exposes changed field flags as a FieldSource.
type FlagSource struct {
	flags *pflag.FlagSet
}

// Lookup implements project.FieldSource.
func (s FlagSource) Lookup(field project.Field) (any, bool) {
	fl := s.flags.Lookup(FlagName(field))
	if fl == nil || !fl.Changed {
		return nil, false
	}
	if fl.Value.Type() == "bool" {
		b, err := s.flags.GetBool(fl.Name)
		if err != nil {
			return nil, false
		}
		return b, true
	}
	return fl.Value.String(), true
}

// GeneratorFlags selects the template and generator binary for a command.
type GeneratorFlags struct {
	Repository string
	Branch     string
	Binary     string
}

// AddTo registers the generator flags on the given cobra command.
func (f *GeneratorFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Repository, "template-repo", "",
		"Template git repository (env: GWA_TEMPLATE_REPOSITORY)")
	cmd.Flags().StringVar(&f.Branch, "template-branch", "",
		"Template branch (env: GWA_TEMPLATE_BRANCH)")
	cmd.Flags().StringVar(&f.Binary, "generator", "",
		"cargo-generate binary (env: GWA_GENERATOR_BINARY)")
}

// Options returns the flag values with their Changed state.
func (f *GeneratorFlags) Options(cmd *cobra.Command) config.GeneratorOptions {
	return config.GeneratorOptions{
		Repository:    f.Repository,
		RepositorySet: cmd.Flags().Changed("template-repo"),
		Branch:        f.Branch,
		BranchSet:     cmd.Flags().Changed("template-branch"),
		Binary:        f.Binary,
		BinarySet:     cmd.Flags().Changed("generator"),
	}
}
