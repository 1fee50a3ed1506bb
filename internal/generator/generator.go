// Package generator turns a validated project request into a directory tree.
//
// Generation is a single synchronous call. All files are rendered and linted
// in memory before anything touches the filesystem, so a template defect
// never leaves a partial tree behind. Once writing starts there is no
// rollback: an I/O failure mid-write leaves the files written so far.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/klejdi94/microforge-cli/internal/errors"
	"github.com/klejdi94/microforge-cli/internal/lint"
	"github.com/klejdi94/microforge-cli/internal/output"
	"github.com/klejdi94/microforge-cli/internal/templates"
)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644
)

// Generator materializes one project.
type Generator struct {
	req      Request
	manifest Manifest
	vcs      Initializer
}

// Option configures a Generator.
type Option func(*Generator)

// WithInitializer replaces the git initializer.
func WithInitializer(i Initializer) Option {
	return func(g *Generator) {
		g.vcs = i
	}
}

// WithManifest replaces the built-in manifest.
func WithManifest(m Manifest) Option {
	return func(g *Generator) {
		g.manifest = m
	}
}

// New creates a generator for req.
func New(req Request, opts ...Option) *Generator {
	g := &Generator{
		req:      req,
		manifest: DefaultManifest(),
		vcs:      GitInitializer{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Root returns the project directory the generator targets.
func (g *Generator) Root() string {
	return g.req.Path
}

// Result describes a generated project.
type Result struct {
	// Root is the project directory.
	Root string

	// Files lists written files relative to Root, slash-separated, in
	// manifest order.
	Files []string

	// GitInitialized is true when the VCS initializer ran successfully.
	GitInitialized bool

	// Warnings holds soft failures that did not fail generation.
	Warnings []string
}

// PlannedFile is a file Generate would write.
type PlannedFile struct {
	// Path is relative to the project root, slash-separated.
	Path string

	// TemplateID names the embedded template.
	TemplateID string

	// Format is the lint applied after rendering.
	Format lint.Format
}

type renderedFile struct {
	path    string
	content []byte
}

// Generate validates the request, checks that the target path is free,
// renders every applicable template and writes the tree. When the request
// asks for it, the VCS initializer runs after all files are written; its
// failure is reported in Result.Warnings and never fails generation.
//
// ctx only bounds the VCS initializer.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if err := g.req.Validate(); err != nil {
		return nil, err
	}

	root := g.req.Path
	if err := checkAbsent(root); err != nil {
		return nil, err
	}

	c, err := BuildContext(g.req)
	if err != nil {
		return nil, err
	}

	entries := g.manifest.Resolve(c)
	output.Debug("resolved manifest", "entries", len(entries), "root", root)

	files, err := render(c, entries)
	if err != nil {
		return nil, err
	}

	written, err := write(root, files)
	if err != nil {
		return nil, err
	}

	result := &Result{Root: root, Files: written}

	if g.req.GitInit {
		if err := g.vcs.Init(ctx, root); err != nil {
			output.Warn("git initialization failed", "path", root, "err", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("git initialization failed: %v", err))
		} else {
			result.GitInitialized = true
		}
	}

	return result, nil
}

// Plan returns the files Generate would write, without touching the
// filesystem.
func (g *Generator) Plan() ([]PlannedFile, error) {
	c, err := BuildContext(g.req)
	if err != nil {
		return nil, err
	}

	r := templates.NewRenderer(c.Map())
	entries := g.manifest.Resolve(c)
	planned := make([]PlannedFile, 0, len(entries))
	seen := make(map[string]string, len(entries))

	for _, e := range entries {
		target, err := renderTarget(r, e, seen)
		if err != nil {
			return nil, err
		}
		planned = append(planned, PlannedFile{Path: target, TemplateID: e.ID, Format: e.FormatOf()})
	}
	return planned, nil
}

// checkAbsent fails when anything, including a dangling symlink, is at path.
func checkAbsent(path string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return oerrors.NewConflictError(path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("checking target path: %w", err)
	}
}

func render(c Context, entries []Entry) ([]renderedFile, error) {
	r := templates.NewRenderer(c.Map())
	files := make([]renderedFile, 0, len(entries))
	seen := make(map[string]string, len(entries))

	for _, e := range entries {
		target, err := renderTarget(r, e, seen)
		if err != nil {
			return nil, err
		}

		content, err := r.RenderTemplate(e.ID, e.Delims)
		if err != nil {
			return nil, oerrors.NewTemplateError(e.ID, err)
		}

		if err := lint.Check(e.FormatOf(), target, content); err != nil {
			return nil, oerrors.NewTemplateError(e.ID, err)
		}

		files = append(files, renderedFile{path: target, content: content})
	}
	return files, nil
}

// renderTarget renders an entry's target path and checks that it stays
// inside the project root and is not claimed by an earlier entry.
func renderTarget(r *templates.Renderer, e Entry, seen map[string]string) (string, error) {
	target, err := r.RenderString(e.ID+":target", e.Target)
	if err != nil {
		return "", oerrors.NewTemplateError(e.ID, err)
	}

	if !filepath.IsLocal(filepath.FromSlash(target)) {
		return "", oerrors.NewTemplateError(e.ID, fmt.Errorf("target %q escapes the project root", target))
	}
	if prev, ok := seen[target]; ok {
		return "", oerrors.NewTemplateError(e.ID, fmt.Errorf("target %q already produced by %s", target, prev))
	}
	seen[target] = e.ID

	return target, nil
}

// write creates root and every file below it.
func write(root string, files []renderedFile) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(root), dirMode); err != nil {
		return nil, fmt.Errorf("creating parent directory: %w", err)
	}
	if err := os.Mkdir(root, dirMode); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, oerrors.NewConflictError(root)
		}
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.path))

		if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", f.path, err)
		}
		if err := os.WriteFile(path, f.content, fileMode); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.path, err)
		}

		output.Debug("created file", "path", f.path)
		written = append(written, f.path)
	}
	return written, nil
}
