package config

import (
	"os"
	"strings"

	"github.com/gwa/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// envPrefix is prepended to every environment override.
const envPrefix = "GWA"

// EnvVar returns the environment variable overriding key,
// e.g. "template.branch" -> "GWA_TEMPLATE_BRANCH".
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ResolvedValue is one configuration value with its provenance.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions are the candidate values for one key.
type ResolveOptions struct {
	Key string
	// FlagValue is used when FlagSet is true, even if empty.
	FlagValue string
	FlagSet   bool
	// ConfigValue is the config file value; empty means unset.
	ConfigValue string
	Default     string
}

// Resolve picks a value using precedence flag > env > config > default and
// records every lower-precedence value it shadowed.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue, envSet := os.LookupEnv(EnvVar(opts.Key))
	envSet = envSet && envValue != ""

	candidates := []struct {
		source ConfigSource
		value  string
		set    bool
	}{
		{SourceFlag, opts.FlagValue, opts.FlagSet},
		{SourceEnv, envValue, envSet},
		{SourceConfig, opts.ConfigValue, opts.ConfigValue != ""},
		{SourceDefault, opts.Default, true},
	}

	for _, c := range candidates {
		if !c.set {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.value != "" {
			result.Shadowed[c.source] = c.value
		}
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) GWA_CONFIG env, (3) ~/.gwa/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]string),
	}

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile
	envValue := os.Getenv(EnvConfig)

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// GeneratorOptions carries the generator-related flag values.
type GeneratorOptions struct {
	Repository    string
	RepositorySet bool
	Branch        string
	BranchSet     bool
	Binary        string
	BinarySet     bool
}

// ResolvedGenerator is the effective template location and generator binary.
type ResolvedGenerator struct {
	Repository ResolvedValue
	Branch     ResolvedValue
	Binary     ResolvedValue
}

// Values returns the resolved values in a stable order for logging.
func (r ResolvedGenerator) Values() []ResolvedValue {
	return []ResolvedValue{r.Repository, r.Branch, r.Binary}
}

// ResolveGenerator resolves the template and generator settings against
// cfg, which may be nil.
func ResolveGenerator(opts GeneratorOptions, cfg *Config) ResolvedGenerator {
	if cfg == nil {
		cfg = &Config{}
	}
	return ResolvedGenerator{
		Repository: Resolve(ResolveOptions{
			Key:         "template.repository",
			FlagValue:   opts.Repository,
			FlagSet:     opts.RepositorySet,
			ConfigValue: cfg.Template.Repository,
			Default:     DefaultTemplateRepository,
		}),
		Branch: Resolve(ResolveOptions{
			Key:         "template.branch",
			FlagValue:   opts.Branch,
			FlagSet:     opts.BranchSet,
			ConfigValue: cfg.Template.Branch,
			Default:     DefaultTemplateBranch,
		}),
		Binary: Resolve(ResolveOptions{
			Key:         "generator.binary",
			FlagValue:   opts.Binary,
			FlagSet:     opts.BinarySet,
			ConfigValue: cfg.Generator.Binary,
			Default:     DefaultGeneratorBinary,
		}),
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
