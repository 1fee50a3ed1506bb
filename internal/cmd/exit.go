package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	oerrors "github.com/klejdi94/microforge-cli/internal/errors"
	"github.com/klejdi94/microforge-cli/internal/output"
)

// Execute runs the CLI with args and returns the process exit code.
// Errors not already reported by a command are printed to stdout.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return oerrors.ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Printed {
			fmt.Fprintln(stdout, output.FormatError(exitErr.Error()))
		}
		return exitErr.Code
	}

	// Non-ExitError: flag and argument errors from cobra.
	fmt.Fprintln(stdout, output.FormatError(err.Error()))
	return oerrors.ExitGeneralError
}
