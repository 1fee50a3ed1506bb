package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects how a file plan is printed.
type OutputFormat string

const (
	// FormatTree renders the plan as an annotated file tree.
	FormatTree OutputFormat = "tree"
	// FormatJSON renders the plan as a JSON document.
	FormatJSON OutputFormat = "json"
	// FormatYAML renders the plan as a YAML document.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid returns true if the format is valid.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatTree, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	f := OutputFormat(s)
	return f, f.Valid()
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"tree", "json", "yaml"}
}

// PlanEntry is one file of a generation plan.
type PlanEntry struct {
	Path        string `json:"path" yaml:"path"`
	Template    string `json:"template" yaml:"template"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Plan is the machine-readable form of a dry run.
type Plan struct {
	Project string      `json:"project" yaml:"project"`
	Root    string      `json:"root" yaml:"root"`
	Files   []PlanEntry `json:"files" yaml:"files"`
}

// WritePlan writes the plan to w in the requested format.
func WritePlan(w io.Writer, plan Plan, format OutputFormat) error {
	switch format {
	case FormatTree:
		files := make(map[string]string, len(plan.Files))
		for _, f := range plan.Files {
			files[f.Path] = f.Description
		}
		_, err := fmt.Fprintln(w, RenderFileTree(plan.Project, files))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
