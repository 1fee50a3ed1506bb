package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klejdi94/microforge-cli/internal/testutil"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

// run executes the CLI in-process against an isolated config path.
func run(t *testing.T, configPath string, args ...string) runResult {
	t.Helper()

	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "config.yaml")
	}
	args = append([]string{"--config", configPath}, args...)

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestVersionCommand(t *testing.T) {
	res := run(t, "", "version")

	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Microforge version")
}

func TestNewCommand_Basic(t *testing.T) {
	dir := t.TempDir()

	res := run(t, "", "new", "testservice", "--dir", dir)

	require.Equal(t, 0, res.code, res.stdout)
	assert.Contains(t, res.stdout, "Successfully created project")
	assert.Contains(t, res.stdout, "Creating microservice: testservice")
	assert.Contains(t, res.stdout, "poetry install")

	project := filepath.Join(dir, "testservice")
	assert.DirExists(t, filepath.Join(project, "app"))
	assert.DirExists(t, filepath.Join(project, "worker"))
	assert.DirExists(t, filepath.Join(project, "tests"))
	assert.FileExists(t, filepath.Join(project, "azure-pipelines.yml"))
}

func TestNewCommand_WithOptions(t *testing.T) {
	dir := t.TempDir()

	res := run(t, "", "new", "testservice", "--dir", dir,
		"--db", "postgres",
		"--broker", "redis",
		"--ci", "github",
		"--auth", "oauth2",
	)

	require.Equal(t, 0, res.code, res.stdout)
	project := filepath.Join(dir, "testservice")
	assert.DirExists(t, filepath.Join(project, "app", "db"))
	assert.DirExists(t, filepath.Join(project, "app", "auth"))
	assert.FileExists(t, filepath.Join(project, ".github", "workflows", "ci.yml"))
}

func TestNewCommand_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "testservice"), 0o755))

	res := run(t, "", "new", "testservice", "--dir", dir)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Error:")
	assert.Contains(t, res.stdout, "already exists")
	assert.NoFileExists(t, filepath.Join(dir, "testservice", "app", "main.py"))
}

func TestNewCommand_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "broker", args: []string{"--broker", "invalid"}, want: "broker must be"},
		{name: "ci", args: []string{"--ci", "invalid"}, want: "ci must be"},
		{name: "db", args: []string{"--db", "mysql"}, want: "db must be"},
		{name: "auth", args: []string{"--auth", "saml"}, want: "auth must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := append([]string{"new", "testservice", "--dir", dir}, tt.args...)

			res := run(t, "", args...)

			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stdout, tt.want)
			assert.NoDirExists(t, filepath.Join(dir, "testservice"))
		})
	}
}

func TestNewCommand_MissingName(t *testing.T) {
	res := run(t, "", "new")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Error:")
}

func TestNewCommand_DryRun(t *testing.T) {
	dir := t.TempDir()

	res := run(t, "", "new", "testservice", "--dir", dir, "--dry-run", "--auth", "oauth2")

	require.Equal(t, 0, res.code, res.stdout)
	assert.Contains(t, res.stdout, "Dry run:")
	assert.Contains(t, res.stdout, "oauth2.py")
	assert.NotContains(t, res.stdout, "Successfully created project")
	assert.NoDirExists(t, filepath.Join(dir, "testservice"))
}

func TestNewCommand_DryRunJSON(t *testing.T) {
	dir := t.TempDir()

	res := run(t, "", "new", "testservice", "--dir", dir, "--dry-run", "-o", "json")

	require.Equal(t, 0, res.code, res.stdout)

	var plan struct {
		Project string `json:"project"`
		Root    string `json:"root"`
		Files   []struct {
			Path string `json:"path"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &plan), res.stdout)
	assert.Equal(t, "testservice", plan.Project)
	assert.Equal(t, filepath.Join(dir, "testservice"), plan.Root)
	assert.NotEmpty(t, plan.Files)
	assert.NoDirExists(t, filepath.Join(dir, "testservice"))
}

func TestNewCommand_OutputFormat(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		res := run(t, "", "new", "testservice", "--dir", t.TempDir(), "--dry-run", "-o", "xml")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, "invalid output format")
	})

	t.Run("requires dry run", func(t *testing.T) {
		dir := t.TempDir()
		res := run(t, "", "new", "testservice", "--dir", dir, "-o", "yaml")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, "--dry-run")
		assert.NoDirExists(t, filepath.Join(dir, "testservice"))
	})
}

func TestNewCommand_ConfigDefaults(t *testing.T) {
	configPath := testutil.WriteConfig(t, "defaults:\n  broker: kafka\n  ci: gitlab\n")

	t.Run("config supplies defaults", func(t *testing.T) {
		dir := t.TempDir()

		res := run(t, configPath, "new", "testservice", "--dir", dir)

		require.Equal(t, 0, res.code, res.stdout)
		compose := testutil.ReadFile(t, filepath.Join(dir, "testservice"), "docker-compose.yml")
		assert.Contains(t, compose, "kafka")
		assert.FileExists(t, filepath.Join(dir, "testservice", ".gitlab-ci.yml"))
	})

	t.Run("flags override config", func(t *testing.T) {
		dir := t.TempDir()

		res := run(t, configPath, "new", "testservice", "--dir", dir, "--broker", "redis")

		require.Equal(t, 0, res.code, res.stdout)
		compose := testutil.ReadFile(t, filepath.Join(dir, "testservice"), "docker-compose.yml")
		assert.NotContains(t, compose, "kafka")
	})

	t.Run("invalid config value is a validation error", func(t *testing.T) {
		badConfig := testutil.WriteConfig(t, "defaults:\n  broker: rabbitmq\n")
		dir := t.TempDir()

		res := run(t, badConfig, "new", "testservice", "--dir", dir)

		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, "broker must be")
	})
}

func TestNewCommand_InteractiveNeedsTerminal(t *testing.T) {
	if isTerminal(os.Stdin) {
		t.Skip("stdin is a terminal")
	}
	dir := t.TempDir()

	res := run(t, "", "new", "testservice", "--dir", dir, "-i")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "requires a terminal")
	assert.NoDirExists(t, filepath.Join(dir, "testservice"))
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func TestUnknownCommand(t *testing.T) {
	res := run(t, "", "frobnicate")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "unknown command")
}
