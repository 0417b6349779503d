package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	docgen "github.com/goliatone/go-docgen"
	"github.com/goliatone/go-docgen/pkg/console"
	"github.com/goliatone/go-docgen/pkg/render"
)

func main() {
	templatesDir := flag.String("templates", "templates", "directory holding template definitions")
	interactive := flag.Bool("interactive", false, "run the interactive console")
	templateName := flag.String("template", "", "template to generate (batch mode)")
	valuesPath := flag.String("values", "", "JSON file mapping field names to values (batch mode)")
	rendererName := flag.String("renderer", "pdf", "renderer to use")
	output := flag.String("output", "", "output file (defaults to output/<template>_<timestamp>)")
	outputDir := flag.String("output-dir", "output", "directory for generated documents")
	flag.Parse()

	ctx := context.Background()

	gen, err := docgen.New(docgen.WithTemplatesDir(*templatesDir))
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	if *interactive {
		session, err := console.New(gen,
			console.WithOutputDir(*outputDir),
			console.WithRenderer(*rendererName),
		)
		if err != nil {
			log.Fatalf("Failed to start console: %v", err)
		}
		if err := session.Run(ctx); err != nil {
			log.Fatalf("Console session failed: %v", err)
		}
		return
	}

	if *templateName == "" {
		log.Fatal("either -interactive or -template is required")
	}

	values, err := readValues(*valuesPath)
	if err != nil {
		log.Fatalf("Failed to read values: %v", err)
	}

	rendered, err := gen.Generate(ctx, docgen.Request{
		Template: *templateName,
		Values:   values,
		Renderer: *rendererName,
	})
	if err != nil {
		log.Fatalf("Failed to generate document: %v", err)
	}

	path := *output
	if path == "" {
		if err := os.MkdirAll(*outputDir, 0o755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
		stamp := time.Now().Format("20060102_150405")
		path = filepath.Join(*outputDir, fmt.Sprintf("%s_%s%s", *templateName, stamp, render.ExtensionFor(rendered.ContentType)))
	}

	if err := os.WriteFile(path, rendered.Bytes, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Document written to %s\n", path)
}

func readValues(path string) (map[string]string, error) {
	if path == "" {
		return nil, fmt.Errorf("-values is required in batch mode")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return values, nil
}
