package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// StdinIsTTY reports whether stdin is a terminal, which interactive prompts need.
func StdinIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
