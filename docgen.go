// Package docgen turns structured field values into rendered commercial
// documents (credit notes, commission acknowledgements) using JSON or YAML
// template definitions. It coordinates the template registry, the document
// builder, and the renderer registry behind a single Generate entry point.
package docgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/goliatone/go-docgen/pkg/document"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/html"
	"github.com/goliatone/go-docgen/pkg/renderers/pdf"
	"github.com/goliatone/go-docgen/pkg/template"
)

const defaultRendererName = "pdf"

// Option customises the generator configuration.
type Option func(*Generator)

// WithTemplatesFS loads template definitions from the provided filesystem.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(g *Generator) {
		g.templatesFS = fsys
	}
}

// WithTemplatesDir loads template definitions from a directory on disk.
func WithTemplatesDir(dir string) Option {
	return func(g *Generator) {
		g.templatesDir = dir
	}
}

// WithRegistry injects an already-loaded template registry, bypassing the
// filesystem load entirely.
func WithRegistry(registry *template.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithBuilder injects a custom document builder.
func WithBuilder(builder *document.Builder) Option {
	return func(g *Generator) {
		g.builder = builder
	}
}

// WithRenderers injects a renderer registry, replacing the built-in PDF and
// HTML renderers.
func WithRenderers(registry *render.Registry) Option {
	return func(g *Generator) {
		g.renderers = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// Generator coordinates the full pipeline from template definition to
// rendered output. It applies sensible defaults (PDF renderer, EUR currency)
// while remaining open to dependency injection for advanced callers. Once
// constructed it holds no mutable state, so it is safe for concurrent use.
type Generator struct {
	registry        *template.Registry
	builder         *document.Builder
	renderers       *render.Registry
	defaultRenderer string

	templatesFS  fs.FS
	templatesDir string
}

// New constructs a Generator applying any provided options. Template sources
// are loaded eagerly so schema problems surface at startup, not per request.
func New(options ...Option) (*Generator, error) {
	g := &Generator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}

	if g.registry == nil {
		switch {
		case g.templatesFS != nil:
			registry, err := template.LoadFS(g.templatesFS)
			if err != nil {
				return nil, err
			}
			g.registry = registry
		case g.templatesDir != "":
			registry, err := template.LoadDir(g.templatesDir)
			if err != nil {
				return nil, err
			}
			g.registry = registry
		default:
			return nil, errors.New("docgen: a template source is required (WithTemplatesFS, WithTemplatesDir, or WithRegistry)")
		}
	}

	if g.builder == nil {
		g.builder = document.NewBuilder()
	}

	if g.renderers == nil {
		g.renderers = render.NewRegistry()
		g.renderers.MustRegister(pdf.New())

		htmlRenderer, err := html.New()
		if err != nil {
			return nil, fmt.Errorf("docgen: default html renderer: %w", err)
		}
		g.renderers.MustRegister(htmlRenderer)
	}

	if g.defaultRenderer == "" {
		g.defaultRenderer = defaultRendererName
	}

	return g, nil
}

// Request describes the inputs required to generate a document.
type Request struct {
	// Template names the template to resolve via the registry.
	Template string

	// Values maps field names to raw caller input, consumed once.
	Values map[string]string

	// Renderer names the renderer to use. If empty, the generator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as a footer line or
	// author metadata.
	RenderOptions render.Options
}

// Rendered is the generated artifact plus its metadata. The generator does
// not retain it after creation; persisting it is the caller's concern.
type Rendered struct {
	Bytes       []byte
	ContentType string
	Template    string
	Renderer    string
	GeneratedAt time.Time
}

// Generate executes the resolve → validate/bind → render sequence and
// returns the rendered artifact. Validation failures surface as
// *document.ValidationError with every offending field listed.
func (g *Generator) Generate(ctx context.Context, req Request) (Rendered, error) {
	if ctx == nil {
		return Rendered{}, errors.New("docgen: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Rendered{}, err
	}
	if req.Template == "" {
		return Rendered{}, errors.New("docgen: template name is required")
	}

	tpl, err := g.registry.Get(req.Template)
	if err != nil {
		return Rendered{}, err
	}

	doc, err := g.builder.Bind(tpl, req.Values)
	if err != nil {
		return Rendered{}, err
	}

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return Rendered{}, err
	}

	output, err := renderer.Render(ctx, doc, req.RenderOptions)
	if err != nil {
		return Rendered{}, fmt.Errorf("docgen: render output: %w", err)
	}

	return Rendered{
		Bytes:       output,
		ContentType: renderer.ContentType(),
		Template:    tpl.Name,
		Renderer:    renderer.Name(),
		GeneratedAt: doc.Date,
	}, nil
}

// Templates returns sorted references for every loaded template.
func (g *Generator) Templates() []template.Ref {
	return g.registry.Refs()
}

// Template resolves a single template definition by name.
func (g *Generator) Template(name string) (template.Template, error) {
	return g.registry.Get(name)
}

// Renderers returns the names of the registered renderers.
func (g *Generator) Renderers() []string {
	return g.renderers.List()
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	target := name
	if target == "" {
		target = g.defaultRenderer
	}

	renderer, err := g.renderers.Get(target)
	if err != nil {
		if name != "" {
			return nil, fmt.Errorf("docgen: renderer %q: %w", name, err)
		}

		// Default renderer was swapped out; fall back to whatever is there.
		names := g.renderers.List()
		if len(names) == 0 {
			return nil, errors.New("docgen: no renderers registered")
		}
		return g.renderers.Get(names[0])
	}
	return renderer, nil
}
