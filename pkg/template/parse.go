package template

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseDocument decodes a single template file. JSON documents must use the
// .json extension; .yaml/.yml documents go through the YAML decoder.
func parseDocument(data []byte, path string) (Template, error) {
	var tpl Template
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tpl); err != nil {
			return Template{}, &SchemaError{Path: path, Reason: "invalid YAML", Err: err}
		}
	default:
		if err := json.Unmarshal(data, &tpl); err != nil {
			return Template{}, &SchemaError{Path: path, Reason: "invalid JSON", Err: err}
		}
	}

	if err := validateTemplate(tpl, path); err != nil {
		return Template{}, err
	}

	normalize(&tpl)
	return tpl, nil
}

func validateTemplate(tpl Template, path string) error {
	if strings.TrimSpace(tpl.Name) == "" {
		return &SchemaError{Path: path, Reason: `missing required key "name"`}
	}
	if strings.TrimSpace(tpl.Title) == "" {
		return &SchemaError{Path: path, Reason: `missing required key "title"`}
	}
	if len(tpl.Fields) == 0 {
		return &SchemaError{Path: path, Reason: `missing required key "fields"`}
	}

	seen := make(map[string]struct{}, len(tpl.Fields))
	for i, field := range tpl.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return &SchemaError{Path: path, Reason: fmt.Sprintf("field %d has no name", i)}
		}
		if _, exists := seen[name]; exists {
			return &SchemaError{Path: path, Reason: fmt.Sprintf("field %q declared more than once", name)}
		}
		seen[name] = struct{}{}

		if field.Type != "" && !field.Type.Valid() {
			return &SchemaError{Path: path, Reason: fmt.Sprintf("field %q has unknown type %q", name, field.Type)}
		}
		if field.Type == FieldTypeEnum && len(field.Options) == 0 {
			return &SchemaError{Path: path, Reason: fmt.Sprintf("enum field %q declares no options", name)}
		}
		if field.Type != FieldTypeEnum && len(field.Options) > 0 {
			return &SchemaError{Path: path, Reason: fmt.Sprintf("field %q declares options but is not an enum", name)}
		}
	}
	return nil
}

// normalize fills in derived defaults so consumers never see zero values:
// untyped fields become strings, unlabeled fields get a label derived from
// their name.
func normalize(tpl *Template) {
	tpl.Name = strings.TrimSpace(tpl.Name)
	tpl.Title = strings.TrimSpace(tpl.Title)
	for i := range tpl.Fields {
		field := &tpl.Fields[i]
		field.Name = strings.TrimSpace(field.Name)
		if field.Type == "" {
			field.Type = FieldTypeString
		}
		if strings.TrimSpace(field.Label) == "" {
			field.Label = DefaultLabeler(field.Name)
		}
	}
}
