// Package main is the entry point for the microforge CLI.
package main

import (
	"context"
	"os"

	"github.com/klejdi94/microforge-cli/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
