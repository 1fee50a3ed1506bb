package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Delims are alternate action delimiters for templates whose output itself
// contains "{{ }}" (helm templates, GitHub Actions expressions).
// The zero value selects the standard delimiters.
type Delims struct {
	Left  string
	Right string
}

// BracketDelims is the "[[ ]]" delimiter pair.
var BracketDelims = Delims{Left: "[[", Right: "]]"}

// IsZero reports whether d selects the standard delimiters.
func (d Delims) IsZero() bool {
	return d.Left == "" && d.Right == ""
}

// Renderer handles template rendering with data substitution.
// Any reference to a key missing from data is an error.
type Renderer struct {
	data  map[string]any
	funcs template.FuncMap
}

// NewRenderer creates a new renderer over the given data.
func NewRenderer(data map[string]any) *Renderer {
	funcs := sprig.TxtFuncMap()
	// Output must depend only on data, never on the caller's environment.
	delete(funcs, "env")
	delete(funcs, "expandenv")

	return &Renderer{data: data, funcs: funcs}
}

// Render parses src as a template named name and executes it.
func (r *Renderer) Render(name string, src []byte, delims Delims) ([]byte, error) {
	tmpl := template.New(name).Funcs(r.funcs).Option("missingkey=error")
	if !delims.IsZero() {
		tmpl = tmpl.Delims(delims.Left, delims.Right)
	}

	tmpl, err := tmpl.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderString renders a template string with the standard delimiters.
func (r *Renderer) RenderString(name, src string) (string, error) {
	result, err := r.Render(name, []byte(src), Delims{})
	if err != nil {
		return "", err
	}
	return string(result), nil
}

// RenderTemplate reads the embedded template id and renders it.
func (r *Renderer) RenderTemplate(id string, delims Delims) ([]byte, error) {
	src, err := Read(id)
	if err != nil {
		return nil, err
	}
	return r.Render(id, src, delims)
}
