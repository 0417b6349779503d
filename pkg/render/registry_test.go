package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-docgen/pkg/document"
)

type stubRenderer struct {
	name string
}

func (r stubRenderer) Name() string        { return r.name }
func (r stubRenderer) ContentType() string { return "text/plain" }
func (r stubRenderer) Render(ctx context.Context, doc document.Document, options Options) ([]byte, error) {
	return []byte(doc.Title), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(stubRenderer{name: "plain"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	renderer, err := registry.Get("plain")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if renderer.Name() != "plain" {
		t.Fatalf("expected plain, got %q", renderer.Name())
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "plain"})

	if err := registry.Register(stubRenderer{name: "plain"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	registry := NewRegistry()

	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected lookup error")
	}
}

func TestExtensionFor(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"application/pdf", ".pdf"},
		{"text/html", ".html"},
		{"text/html; charset=utf-8", ".html"},
		{"application/octet-stream", ".bin"},
		{"", ".bin"},
	}

	for _, tc := range cases {
		if got := ExtensionFor(tc.contentType); got != tc.want {
			t.Fatalf("ExtensionFor(%q) = %q, want %q", tc.contentType, got, tc.want)
		}
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "zeta"})
	registry.MustRegister(stubRenderer{name: "alpha"})

	names := registry.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("expected sorted names, got %v", names)
	}

	if !registry.Has("alpha") || registry.Has("missing") {
		t.Fatalf("Has reported unexpected membership")
	}
}
