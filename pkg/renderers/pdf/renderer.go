// Package pdf renders bound documents as A4 PDF byte streams. The layout is
// a simple commercial-document sheet: bold title, date line, then one
// label/value row per template field.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/goliatone/go-docgen/pkg/document"
	"github.com/goliatone/go-docgen/pkg/render"
)

// Layout constants in millimetres on an A4 page.
const (
	marginLeft   = 30.0
	titleY       = 30.0
	dateY        = 40.0
	rowStartY    = 60.0
	rowStep      = 6.0
	bottomMargin = 20.0
)

const (
	titleFontSize = 20.0
	bodyFontSize  = 10.0
)

// Option configures the PDF renderer.
type Option func(*Renderer)

// WithCreator overrides the creator string stamped into PDF metadata.
func WithCreator(creator string) Option {
	return func(r *Renderer) {
		if creator != "" {
			r.creator = creator
		}
	}
}

// Renderer implements render.Renderer for PDF output.
type Renderer struct {
	creator string
}

// New constructs a PDF renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{creator: "go-docgen"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "pdf"
}

func (r *Renderer) ContentType() string {
	return "application/pdf"
}

// Render lays the document out on A4 pages and returns the PDF bytes. It
// never writes to disk; persisting the artifact is the caller's concern.
func (r *Renderer) Render(ctx context.Context, doc document.Document, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("pdf renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := gofpdf.New("P", "mm", "A4", "")
	page.SetTitle(doc.Title, true)
	page.SetCreator(r.creator, true)
	if options.Author != "" {
		page.SetAuthor(options.Author, true)
	}
	if !doc.Date.IsZero() {
		page.SetCreationDate(doc.Date)
	}
	page.SetAutoPageBreak(false, bottomMargin)
	page.AddPage()

	// Core fonts are cp1252; translate so accented names and addresses
	// survive instead of rendering as mojibake.
	tr := page.UnicodeTranslatorFromDescriptor("")

	_, pageHeight := page.GetPageSize()

	page.SetFont("Helvetica", "B", titleFontSize)
	page.Text(marginLeft, titleY, tr(doc.Title))

	page.SetFont("Helvetica", "", bodyFontSize)
	page.Text(marginLeft, dateY, tr("Date: "+doc.Date.Format("02/01/2006")))

	y := rowStartY
	for _, row := range doc.Rows {
		if y > pageHeight-bottomMargin {
			page.AddPage()
			y = rowStartY
		}
		page.Text(marginLeft, y, tr(fmt.Sprintf("%s: %s", row.Label, row.Value)))
		y += rowStep
	}

	if options.Footer != "" {
		y += rowStep
		if y > pageHeight-bottomMargin {
			page.AddPage()
			y = rowStartY
		}
		page.SetFont("Helvetica", "I", bodyFontSize)
		page.Text(marginLeft, y, tr(options.Footer))
	}

	var buf bytes.Buffer
	if err := page.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf renderer: write output: %w", err)
	}
	return buf.Bytes(), nil
}
