package template

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Registry holds every template loaded from a source filesystem. It is
// read-only after load, so lookups are safe for concurrent use.
type Registry struct {
	templates map[string]Template
	// origins remembers which file declared each template so duplicate
	// declarations can name both sides.
	origins map[string]string
}

// NewRegistry constructs an empty registry. Most callers use LoadFS or
// LoadDir instead and never touch this directly.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]Template),
		origins:   make(map[string]string),
	}
}

// LoadFS walks the provided filesystem and parses every JSON/YAML template
// document. Loading stops at the first malformed file or name collision.
func LoadFS(fsys fs.FS) (*Registry, error) {
	registry := NewRegistry()
	if fsys == nil {
		return registry, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return &SchemaError{Path: path, Reason: "unreadable file", Err: err}
		}

		tpl, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		if existing, ok := registry.origins[tpl.Name]; ok {
			return &DuplicateError{Name: tpl.Name, Path: path, Existing: existing}
		}

		registry.templates[tpl.Name] = tpl
		registry.origins[tpl.Name] = path
		return nil
	})
	if err != nil {
		return nil, err
	}

	return registry, nil
}

// LoadDir loads templates from a directory on disk.
func LoadDir(dir string) (*Registry, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, &SchemaError{Reason: "template directory is required"}
	}
	return LoadFS(os.DirFS(filepath.Clean(dir)))
}

// Get returns the template registered under name. The returned error wraps
// ErrNotFound so callers can branch with errors.Is.
func (r *Registry) Get(name string) (Template, error) {
	if r == nil {
		return Template{}, &NotFoundError{Name: name}
	}
	tpl, ok := r.templates[name]
	if !ok {
		return Template{}, &NotFoundError{Name: name}
	}
	return tpl, nil
}

// Has reports whether a template is registered under name.
func (r *Registry) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.templates[name]
	return ok
}

// Len reports how many templates the registry holds.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.templates)
}

// Refs returns name/title references for every loaded template, sorted by
// name so menus and listings stay stable.
func (r *Registry) Refs() []Ref {
	if r == nil || len(r.templates) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)

	refs := make([]Ref, 0, len(names))
	for _, name := range names {
		refs = append(refs, Ref{Name: name, Title: r.templates[name].Title})
	}
	return refs
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
