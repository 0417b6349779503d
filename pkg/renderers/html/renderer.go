// Package html renders bound documents as a standalone HTML preview page.
// It exists so documents can be inspected in a browser before committing to
// PDF output.
package html

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-docgen/pkg/document"
	"github.com/goliatone/go-docgen/pkg/render"
)

const documentTemplate = "templates/document.tmpl"

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The
// bundle must contain templates/document.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	template *pongo2.Template
	policy   *bluemonday.Policy
}

// New constructs the HTML renderer, compiling the document template up
// front so render-time failures are limited to execution.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	data, err := fs.ReadFile(cfg.templateFS, documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("html renderer: read template: %w", err)
	}
	tpl, err := pongo2.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: compile template: %w", err)
	}

	return &Renderer{
		template: tpl,
		policy:   bluemonday.StrictPolicy(),
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the document template. Caller-supplied values are stripped
// of markup and entity-escaped by the sanitiser; the template emits them
// as-is so entities are not escaped a second time.
func (r *Renderer) Render(ctx context.Context, doc document.Document, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("html renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := document.Document{
		Template: doc.Template,
		Title:    r.policy.Sanitize(doc.Title),
		Date:     doc.Date,
		Rows:     make([]document.Row, 0, len(doc.Rows)),
	}
	for _, row := range doc.Rows {
		clean.Rows = append(clean.Rows, document.Row{
			Name:  row.Name,
			Label: r.policy.Sanitize(row.Label),
			Value: r.policy.Sanitize(row.Value),
		})
	}

	out, err := r.template.ExecuteBytes(pongo2.Context{
		"doc":    clean,
		"date":   doc.Date.Format("02/01/2006"),
		"footer": r.policy.Sanitize(options.Footer),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: execute template: %w", err)
	}
	return out, nil
}
