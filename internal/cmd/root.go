// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gwa/cli/internal/cmd/config"
	"github.com/gwa/cli/internal/cmdtypes"
	internalconfig "github.com/gwa/cli/internal/config"
	"github.com/gwa/cli/internal/output"
)

// NewRootCmd creates the root command for the gwa CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(createDeps{})
}

func newRootCmd(deps createDeps) *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "gwa",
		Short: "General Web App project scaffolder",
		Long: `gwa scaffolds a new web application project from the General Web App
template: a Rust server, a frontend and an optional Tauri desktop shell backed
by a PostgreSQL database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, cfg, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: GWA_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		newCreateCmd(cfg, deps),
		NewScriptCmd(cfg),
		config.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals loads the config file and sets up logging. The loaded
// values are stored on cfg so subcommands never read package state.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, configFlag string, verbose, timestamps bool) error {
	cfg.Verbose = verbose

	configPath, err := internalconfig.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}
	cfg.ConfigPath = configPath

	loaded, err := internalconfig.NewLoader().Load(configPath.Value)
	if err != nil {
		// Commands like `config vet` still need to run against a broken file.
		output.Debug("config load error", "error", err)
		loaded = &internalconfig.Config{}
	}
	cfg.Config = loaded

	logCfg := output.LogConfig{Verbose: verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	internalconfig.LogResolvedValues([]internalconfig.ResolvedValue{configPath})
	return nil
}
