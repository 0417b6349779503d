package render

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/document"
)

// Renderer converts a bound Document into a byte representation (PDF, HTML,
// plain text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc document.Document, options Options) ([]byte, error)
}
