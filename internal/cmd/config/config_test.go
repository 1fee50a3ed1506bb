package config_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klejdi94/microforge-cli/internal/cmd"
	"github.com/klejdi94/microforge-cli/internal/testutil"
)

func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cmd.Execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String()
}

func TestConfigInit(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	code, out := execute(t, "--config", configPath, "config", "init")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Config file created")
	assert.FileExists(t, configPath)

	content := testutil.ReadFile(t, filepath.Dir(configPath), "config.yaml")
	assert.Contains(t, content, "broker: redis")
	assert.Contains(t, content, "ci: azure")

	code, out = execute(t, "--config", configPath, "config", "init")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "configuration already exists")

	code, out = execute(t, "--config", configPath, "config", "init", "--force")
	assert.Equal(t, 0, code, out)
}

func TestConfigVet(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		code, _ := execute(t, "--config", configPath, "config", "init")
		require.Equal(t, 0, code)

		code, out := execute(t, "--config", configPath, "config", "vet")
		assert.Equal(t, 0, code, out)
		assert.Contains(t, out, "Config file is valid")
	})

	t.Run("invalid value is reported with its field", func(t *testing.T) {
		configPath := testutil.WriteConfig(t, "defaults:\n  ci: jenkins\n")

		code, out := execute(t, "--config", configPath, "config", "vet")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "config validation failed")
		assert.Contains(t, out, "/defaults/ci")
	})

	t.Run("missing file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")

		code, out := execute(t, "--config", configPath, "config", "vet")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "configuration file not found")
	})
}
