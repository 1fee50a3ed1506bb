// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"fmt"
	"io"

	"github.com/klejdi94/microforge-cli/internal/config"
	oerrors "github.com/klejdi94/microforge-cli/internal/errors"
	"github.com/klejdi94/microforge-cli/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file. Empty when no file exists.
	Config *config.Config

	// ConfigPath is the resolved, expanded config file path.
	ConfigPath string

	// Verbose mirrors the --verbose flag.
	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess      = oerrors.ExitSuccess
	ExitGeneralError = oerrors.ExitGeneralError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// PrintError reports err once with the "Error:" prefix and returns an
// ExitError marked as printed, so the caller does not report it again.
func PrintError(w io.Writer, err error) error {
	fmt.Fprintln(w, output.FormatError(err.Error()))
	return &ExitError{Code: ExitGeneralError, Err: err, Printed: true}
}
