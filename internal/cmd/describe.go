package cmd

// fileDescriptions annotates well-known generated files in the tree view.
var fileDescriptions = map[string]string{
	"app/main.py":                    "FastAPI application",
	"app/routes/health.py":           "Health and readiness probes",
	"app/core/config.py":             "Settings from environment",
	"app/core/logging.py":            "Logging setup",
	"app/db/database.py":             "Async SQLAlchemy engine",
	"app/db/models.py":               "ORM models",
	"app/auth/oauth2.py":             "OAuth2 bearer validation",
	"worker/worker.py":               "Background worker",
	"tests/test_health.py":           "Health endpoint tests",
	"tests/test_auth.py":             "Auth tests",
	"Dockerfile":                     "Container image",
	"docker-compose.yml":             "Local stack",
	"pyproject.toml":                 "Poetry project",
	"README.md":                      "Project overview",
	".env.example":                   "Environment template",
	"helm/Chart.yaml":                "Helm chart",
	"helm/values.yaml":               "Chart values",
	"azure-pipelines.yml":            "Azure Pipelines",
	".github/workflows/ci.yml":       "GitHub Actions",
	".gitlab-ci.yml":                 "GitLab CI",
	"helm/templates/deployment.yaml": "API and worker deployments",
	"helm/templates/service.yaml":    "Cluster service",
}

// describe maps each file to its description, empty when none is known.
func describe(files []string) map[string]string {
	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f] = fileDescriptions[f]
	}
	return out
}
