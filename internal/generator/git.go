package generator

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/klejdi94/microforge-cli/internal/output"
)

// Initializer places a freshly generated project under version control.
type Initializer interface {
	Init(ctx context.Context, dir string) error
}

// GitInitializer runs `git init` followed by `git add -A` in the project
// root. Nothing is committed.
type GitInitializer struct {
	// Binary is the git executable. Empty means "git" on PATH.
	Binary string
}

// Init implements Initializer.
func (g GitInitializer) Init(ctx context.Context, dir string) error {
	if err := g.run(ctx, dir, "init", "--quiet"); err != nil {
		return err
	}
	return g.run(ctx, dir, "add", "-A")
}

func (g GitInitializer) run(ctx context.Context, dir string, args ...string) error {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}

	output.Debug("running git", "dir", dir, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}
