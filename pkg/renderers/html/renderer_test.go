package html

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-docgen/pkg/document"
	"github.com/goliatone/go-docgen/pkg/render"
)

func sampleDocument() document.Document {
	return document.Document{
		Template: "credit_note",
		Title:    "Credit Note",
		Date:     time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
		Rows: []document.Row{
			{Name: "document_number", Label: "Document Number", Value: "CN-001"},
			{Name: "amount", Label: "Amount", Value: "EUR 150.00"},
		},
	}
}

func TestRendererIdentity(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("expected name html, got %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderContainsRows(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleDocument(), render.Options{Footer: "Payable within 30 days"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	page := string(out)
	for _, want := range []string{"Credit Note", "Document Number", "CN-001", "EUR 150.00", "10/02/2026", "Payable within 30 days"} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected output to contain %q\n%s", want, page)
		}
	}
}

func TestRenderStripsMarkupFromValues(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	doc := sampleDocument()
	doc.Rows = []document.Row{
		{Name: "client_name", Label: "Client Name", Value: `<script>alert("x")</script>Acme`},
	}

	out, err := renderer.Render(context.Background(), doc, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	page := string(out)
	if strings.Contains(page, "<script>") {
		t.Fatalf("expected script tags to be stripped\n%s", page)
	}
	if !strings.Contains(page, "Acme") {
		t.Fatalf("expected text content to survive sanitisation")
	}
}

func TestRenderEscapesEntitiesOnce(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	doc := sampleDocument()
	doc.Rows = []document.Row{
		{Name: "client_name", Label: "Client Name", Value: "Smith & Sons"},
	}

	out, err := renderer.Render(context.Background(), doc, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	page := string(out)
	if strings.Contains(page, "&amp;amp;") {
		t.Fatalf("value double-escaped, browser would display the entity literally:\n%s", page)
	}
	if !strings.Contains(page, "Smith &amp; Sons") {
		t.Fatalf("expected single-escaped value, got:\n%s", page)
	}
}

func TestRenderOmitsEmptyFooter(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleDocument(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), `<p class="docgen-footer">`) {
		t.Fatalf("expected footer block to be omitted when empty")
	}
}
