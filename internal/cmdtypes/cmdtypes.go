// Package cmdtypes provides shared types for the cmd package and its
// sub-packages. It is separate from internal/cmd to avoid import cycles
// between internal/cmd and internal/cmd/config.
package cmdtypes

import "github.com/gwa/cli/internal/config"

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is populated once at startup and passed explicitly
// into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded config file. Never nil after startup; an absent
	// file yields an empty Config.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath config.ResolvedValue

	Verbose bool
}
