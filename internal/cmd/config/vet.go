package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klejdi94/microforge-cli/internal/cmdtypes"
	mfconfig "github.com/klejdi94/microforge-cli/internal/config"
	oerrors "github.com/klejdi94/microforge-cli/internal/errors"
	"github.com/klejdi94/microforge-cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the microforge configuration file against the internal schema.

The command validates ~/.microforge/config.yaml by default.
Use the --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	out := c.OutOrStdout()
	path := cfg.ConfigPath

	output.Debug("validating config", "path", path)

	exists, err := mfconfig.FileExists(path)
	if err != nil {
		return cmdtypes.PrintError(out, fmt.Errorf("checking config file: %w", err))
	}
	if !exists {
		return cmdtypes.PrintError(out, &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: path,
			Hint:     "Run 'microforge config init' to create a default configuration.",
			Cause:    oerrors.ErrNotFound,
		})
	}

	if err := mfconfig.ValidateFile(path); err != nil {
		var verrs mfconfig.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintln(out, output.FormatError("config validation failed"))
			fmt.Fprintf(out, "  File: %s\n\n", path)
			for _, e := range verrs {
				fmt.Fprintf(out, "  %s: %s\n", e.Field, e.Message)
			}
			return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err, Printed: true}
		}
		return cmdtypes.PrintError(out, fmt.Errorf("validating config: %w", err))
	}

	fmt.Fprintln(out, output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
