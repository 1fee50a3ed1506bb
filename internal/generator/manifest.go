package generator

import (
	"github.com/klejdi94/microforge-cli/internal/lint"
	"github.com/klejdi94/microforge-cli/internal/options"
	"github.com/klejdi94/microforge-cli/internal/templates"
)

// Entry is one row of the template manifest.
type Entry struct {
	// ID names the embedded template (see package templates).
	ID string

	// Target is the output path relative to the project root. It is itself
	// rendered against the context.
	Target string

	// Gate names a boolean context key. Empty means always emitted.
	Gate string

	// Format selects the post-render lint.
	Format lint.Format

	// Delims overrides the action delimiters of the template body.
	Delims templates.Delims
}

// Manifest is the ordered table of templates a project may contain.
type Manifest []Entry

// defaultManifest is read-only after package initialization.
var defaultManifest = Manifest{
	{ID: "app/__init__.py", Target: "app/__init__.py"},
	{ID: "app/main.py", Target: "app/main.py"},
	{ID: "app/routes/__init__.py", Target: "app/routes/__init__.py"},
	{ID: "app/routes/health.py", Target: "app/routes/health.py"},
	{ID: "app/core/__init__.py", Target: "app/core/__init__.py"},
	{ID: "app/core/config.py", Target: "app/core/config.py"},
	{ID: "app/core/logging.py", Target: "app/core/logging.py"},

	{ID: "app/db/__init__.py", Target: "app/db/__init__.py", Gate: KeyHasDB},
	{ID: "app/db/database.py", Target: "app/db/database.py", Gate: KeyHasDB},
	{ID: "app/db/models.py", Target: "app/db/models.py", Gate: KeyHasDB},

	{ID: "app/auth/__init__.py", Target: "app/auth/__init__.py", Gate: KeyHasAuth},
	{ID: "app/auth/oauth2.py", Target: "app/auth/{{ .auth }}.py", Gate: UseKey(options.AuthOAuth2)},

	{ID: "worker/__init__.py", Target: "worker/__init__.py"},
	{ID: "worker/worker.py", Target: "worker/worker.py"},

	{ID: "tests/__init__.py", Target: "tests/__init__.py"},
	{ID: "tests/test_health.py", Target: "tests/test_health.py"},
	{ID: "tests/test_auth.py", Target: "tests/test_auth.py", Gate: KeyHasAuth},

	{ID: "Dockerfile", Target: "Dockerfile"},
	{ID: ".dockerignore", Target: ".dockerignore"},
	{ID: "docker-compose.yml", Target: "docker-compose.yml", Format: lint.FormatCompose},
	{ID: "pyproject.toml", Target: "pyproject.toml", Format: lint.FormatTOML},
	{ID: "README.md", Target: "README.md"},
	{ID: ".gitignore", Target: ".gitignore"},
	{ID: ".env.example", Target: ".env.example"},

	{ID: "helm/Chart.yaml", Target: "helm/Chart.yaml", Format: lint.FormatYAML},
	{ID: "helm/values.yaml", Target: "helm/values.yaml", Format: lint.FormatYAML},
	// Chart templates are themselves Go templates, so they are not YAML yet.
	{ID: "helm/templates/_helpers.tpl", Target: "helm/templates/_helpers.tpl", Delims: templates.BracketDelims},
	{ID: "helm/templates/deployment.yaml", Target: "helm/templates/deployment.yaml", Delims: templates.BracketDelims},
	{ID: "helm/templates/service.yaml", Target: "helm/templates/service.yaml", Delims: templates.BracketDelims},

	{ID: "azure-pipelines.yml", Target: "azure-pipelines.yml", Gate: UseKey(options.CIAzure), Format: lint.FormatYAML},
	{ID: ".github/workflows/ci.yml", Target: ".github/workflows/ci.yml", Gate: UseKey(options.CIGitHub), Format: lint.FormatYAML, Delims: templates.BracketDelims},
	{ID: ".gitlab-ci.yml", Target: ".gitlab-ci.yml", Gate: UseKey(options.CIGitLab), Format: lint.FormatYAML},
}

// DefaultManifest returns a copy of the built-in manifest.
func DefaultManifest() Manifest {
	out := make(Manifest, len(defaultManifest))
	copy(out, defaultManifest)
	return out
}

// Resolve returns the entries that apply to ctx, in table order: every
// ungated entry plus every entry whose gate is true. A gate naming an absent
// or non-boolean key is treated as false.
func (m Manifest) Resolve(ctx Context) []Entry {
	var out []Entry
	for _, e := range m {
		if e.Gate != "" {
			if on, _ := ctx.Bool(e.Gate); !on {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// FormatOf returns the entry's lint format, defaulting to text.
func (e Entry) FormatOf() lint.Format {
	if e.Format == "" {
		return lint.FormatText
	}
	return e.Format
}
