// Package config provides configuration loading and management.
package config

import "github.com/gwa/cli/internal/handoff"

// TemplateConfig locates the remote project template.
type TemplateConfig struct {
	// Repository is the git URL of the template.
	// Env: GWA_TEMPLATE_REPOSITORY
	Repository string `mapstructure:"repository" yaml:"repository,omitempty" json:"repository,omitempty"`

	// Branch is the template branch.
	// Env: GWA_TEMPLATE_BRANCH
	Branch string `mapstructure:"branch" yaml:"branch,omitempty" json:"branch,omitempty"`
}

// GeneratorConfig configures the external Template Generator.
type GeneratorConfig struct {
	// Binary is the cargo-generate executable, a name in PATH or a path.
	// Env: GWA_GENERATOR_BINARY
	Binary string `mapstructure:"binary" yaml:"binary,omitempty" json:"binary,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Nil means the default (true). Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config is the gwa CLI configuration, loaded from ~/.gwa/config.yaml.
// Zero values mean "not set in the file".
type Config struct {
	Template  TemplateConfig  `mapstructure:"template" yaml:"template,omitempty" json:"template,omitempty"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator,omitempty" json:"generator,omitempty"`
	Log       LogConfig       `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`
}

// Built-in defaults applied when neither flag, env nor config sets a value.
const (
	DefaultTemplateRepository = handoff.DefaultRepository
	DefaultTemplateBranch     = handoff.DefaultBranch
	DefaultGeneratorBinary    = handoff.DefaultBinary
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Template: TemplateConfig{
			Repository: DefaultTemplateRepository,
			Branch:     DefaultTemplateBranch,
		},
		Generator: GeneratorConfig{Binary: DefaultGeneratorBinary},
		Log:       LogConfig{Timestamps: &timestamps},
	}
}

// DefaultConfigTemplate is written by `gwa config init`.
const DefaultConfigTemplate = `# gwa CLI configuration
# Values here are overridden by GWA_* environment variables and by flags.

template:
  # Git repository of the project template.
  repository: ` + DefaultTemplateRepository + `
  # Branch of the template to instantiate.
  branch: ` + DefaultTemplateBranch + `

generator:
  # cargo-generate executable, looked up in PATH unless a path is given.
  binary: ` + DefaultGeneratorBinary + `

log:
  timestamps: true
`
