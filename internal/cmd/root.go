// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/klejdi94/microforge-cli/internal/cmd/config"
	"github.com/klejdi94/microforge-cli/internal/cmdtypes"
	mfconfig "github.com/klejdi94/microforge-cli/internal/config"
	"github.com/klejdi94/microforge-cli/internal/output"
)

// rootFlags holds the persistent flag values.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the microforge CLI.
func NewRootCmd() *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "microforge",
		Short: "A production-ready project generator for modern Python microservices",
		Long: `microforge generates a runnable Python microservice skeleton: a FastAPI
application, a background worker, tests, a Dockerfile and docker-compose file,
a Helm chart and a CI pipeline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (default ~/.microforge/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(config.NewConfigCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	configPath := flags.config
	if configPath == "" {
		var err error
		configPath, err = mfconfig.GetConfigFile()
		if err != nil {
			return cmdtypes.PrintError(cmd.OutOrStdout(), err)
		}
	}
	expanded, err := mfconfig.ExpandPath(configPath)
	if err != nil {
		return cmdtypes.PrintError(cmd.OutOrStdout(), err)
	}

	cfg.ConfigPath = expanded
	cfg.Verbose = flags.verbose

	loaded, loadErr := mfconfig.NewLoader().Load(expanded)
	if loadErr == nil {
		cfg.Config = loaded
	}

	// Build LogConfig with precedence: flag > config > default(off)
	logCfg := output.LogConfig{
		Verbose: flags.verbose,
		Writer:  cmd.ErrOrStderr(),
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Config != nil && cfg.Config.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Config.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	// Commands that do not need config (version, config vet) must still work
	// with a broken file, so a load failure is only reported.
	if loadErr != nil {
		output.Warn("ignoring config file", "path", expanded, "error", loadErr)
	}

	output.Debug("initializing CLI", "config", cfg.ConfigPath, "loaded", cfg.Config != nil)
	return nil
}
