package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	ids, err := List()
	require.NoError(t, err)

	assert.Contains(t, ids, "app/main.py")
	assert.Contains(t, ids, "pyproject.toml")
	assert.Contains(t, ids, "docker-compose.yml")
	// Dot-prefixed and underscore-prefixed files are embedded too.
	assert.Contains(t, ids, ".gitignore")
	assert.Contains(t, ids, ".github/workflows/ci.yml")
	assert.Contains(t, ids, "helm/templates/_helpers.tpl")

	assert.IsNonDecreasing(t, ids)
	for _, id := range ids {
		assert.NotContains(t, id, Ext, "IDs carry no template suffix")
	}
}

func TestExists(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"app/main.py", true},
		{"helm/Chart.yaml", true},
		{"app/main.py.tmpl", false},
		{"app", false},
		{"missing.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, Exists(tt.id))
		})
	}
}

func TestRead(t *testing.T) {
	content, err := Read("app/routes/health.py")
	require.NoError(t, err)
	assert.Contains(t, string(content), "/health")

	_, err = Read("does/not/exist")
	assert.ErrorContains(t, err, "reading template does/not/exist")
}
