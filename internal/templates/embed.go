// Package templates provides the embedded project skeleton and its renderer.
//
// Templates live under files/ and mirror the generated tree, each with a
// .tmpl suffix. A template ID is its path relative to files/ without the
// suffix, so "app/main.py" is read from files/app/main.py.tmpl.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// all: is required for .gitignore, .github/ and helm's _helpers.tpl.
//
//go:embed all:files
var templateFS embed.FS

const (
	rootDir = "files"

	// Ext is the suffix every template file carries.
	Ext = ".tmpl"
)

// Read returns the raw source of the template with the given ID.
func Read(id string) ([]byte, error) {
	content, err := fs.ReadFile(templateFS, sourcePath(id))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", id, err)
	}
	return content, nil
}

// Exists reports whether a template with the given ID is embedded.
func Exists(id string) bool {
	info, err := fs.Stat(templateFS, sourcePath(id))
	return err == nil && !info.IsDir()
}

// List returns the IDs of all embedded templates in lexical order.
func List() ([]string, error) {
	var ids []string

	err := fs.WalkDir(templateFS, rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, Ext) {
			return nil
		}

		relPath := strings.TrimPrefix(path, rootDir+"/")
		ids = append(ids, strings.TrimSuffix(relPath, Ext))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	sort.Strings(ids)
	return ids, nil
}

// sourcePath maps a template ID to its path in the embedded FS.
// Embedded paths always use forward slashes.
func sourcePath(id string) string {
	return rootDir + "/" + id + Ext
}
