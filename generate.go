package docgen

import (
	"context"
	"io/fs"
)

// GeneratePDF is the simplest entry point for callers that just want PDF
// bytes: it loads templates from fsys, binds values against the named
// template, and renders with the built-in PDF renderer.
func GeneratePDF(ctx context.Context, fsys fs.FS, templateName string, values map[string]string) ([]byte, error) {
	gen, err := New(WithTemplatesFS(fsys))
	if err != nil {
		return nil, err
	}
	rendered, err := gen.Generate(ctx, Request{
		Template: templateName,
		Values:   values,
		Renderer: "pdf",
	})
	if err != nil {
		return nil, err
	}
	return rendered.Bytes, nil
}
