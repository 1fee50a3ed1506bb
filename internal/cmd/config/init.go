package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/klejdi94/microforge-cli/internal/cmdtypes"
	mfconfig "github.com/klejdi94/microforge-cli/internal/config"
	oerrors "github.com/klejdi94/microforge-cli/internal/errors"
)

const configHeader = "# microforge configuration\n# Flags given to `microforge new` override these defaults.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a microforge configuration file with default values.

The file is created at ~/.microforge/config.yaml by default.
Use the --config flag to specify a different location.

Examples:
  # Initialize configuration
  microforge config init

  # Overwrite existing configuration
  microforge config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	out := c.OutOrStdout()
	path := cfg.ConfigPath

	exists, err := mfconfig.FileExists(path)
	if err != nil {
		return cmdtypes.PrintError(out, fmt.Errorf("checking config file: %w", err))
	}

	if exists && !force {
		return cmdtypes.PrintError(out, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrAlreadyExists,
		})
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cmdtypes.PrintError(out, fmt.Errorf("creating config directory: %w", err))
	}

	data, err := yaml.Marshal(mfconfig.DefaultConfig())
	if err != nil {
		return cmdtypes.PrintError(out, fmt.Errorf("marshaling config: %w", err))
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return cmdtypes.PrintError(out, fmt.Errorf("writing config file: %w", err))
	}

	fmt.Fprintf(out, "Config file created: %s\n", path)
	return nil
}
