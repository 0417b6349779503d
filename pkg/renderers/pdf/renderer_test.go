package pdf

import (
	"bytes"
	"compress/zlib"
	"context"
	"io"
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
			{Name: "client_name", Label: "Client Name", Value: "Acme Realty"},
			{Name: "amount", Label: "Amount", Value: "EUR 150.00"},
		},
	}
}

func TestRendererIdentity(t *testing.T) {
	renderer := New()
	if renderer.Name() != "pdf" {
		t.Fatalf("expected name pdf, got %q", renderer.Name())
	}
	if renderer.ContentType() != "application/pdf" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderProducesPDFBytes(t *testing.T) {
	renderer := New()

	out, err := renderer.Render(context.Background(), sampleDocument(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", out[:min(8, len(out))])
	}
}

func TestRenderManyRowsSpansPages(t *testing.T) {
	doc := sampleDocument()
	doc.Rows = nil
	for i := 0; i < 120; i++ {
		doc.Rows = append(doc.Rows, document.Row{Name: "field", Label: "Field", Value: "value"})
	}

	renderer := New()
	out, err := renderer.Render(context.Background(), doc, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF header")
	}
}

func TestRenderTranslatesAccentedValues(t *testing.T) {
	doc := sampleDocument()
	doc.Rows = []document.Row{
		{Name: "client_name", Label: "Client Name", Value: "Nicolò Società"},
	}

	renderer := New()
	out, err := renderer.Render(context.Background(), doc, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	content := decodedStreams(t, out)
	if len(content) == 0 {
		t.Fatalf("expected decodable content streams")
	}
	// Core fonts are cp1252: raw UTF-8 in the stream would display as
	// mojibake, so the translated single-byte form must appear instead.
	if bytes.Contains(content, []byte("Nicol\xc3\xb2")) {
		t.Fatalf("value left in UTF-8, page would display mojibake")
	}
	if !bytes.Contains(content, []byte("Nicol\xf2 Societ\xe0")) {
		t.Fatalf("expected cp1252-encoded value in content stream:\n%q", content)
	}
}

// decodedStreams inflates every zlib stream object in the PDF so tests can
// inspect the page content.
func decodedStreams(t *testing.T, pdf []byte) []byte {
	t.Helper()

	var content []byte
	rest := pdf
	for {
		start := bytes.Index(rest, []byte("stream"))
		if start < 0 {
			break
		}
		chunk := bytes.TrimLeft(rest[start+len("stream"):], "\r\n")
		end := bytes.Index(chunk, []byte("endstream"))
		if end < 0 {
			break
		}
		if reader, err := zlib.NewReader(bytes.NewReader(chunk[:end])); err == nil {
			if data, err := io.ReadAll(reader); err == nil {
				content = append(content, data...)
			}
			reader.Close()
		}
		rest = chunk[end+len("endstream"):]
	}
	return content
}

func TestRenderRequiresLiveContext(t *testing.T) {
	renderer := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, sampleDocument(), render.Options{}); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
