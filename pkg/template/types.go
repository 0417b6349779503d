package template

// FieldType is the enumeration of value kinds a template field can declare.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeText     FieldType = "text"
	FieldTypeCurrency FieldType = "currency"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeEnum     FieldType = "enum"
)

// Valid reports whether the type is one of the supported kinds.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeString, FieldTypeText, FieldTypeCurrency, FieldTypeNumber,
		FieldTypeDate, FieldTypeBoolean, FieldTypeEnum:
		return true
	}
	return false
}

// Field describes a single named, typed, optionally-required slot within a
// template. Struct fields are annotated so templates round-trip through the
// JSON/YAML document format unchanged.
type Field struct {
	Name     string    `json:"name" yaml:"name"`
	Label    string    `json:"label,omitempty" yaml:"label,omitempty"`
	Required bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Type     FieldType `json:"type,omitempty" yaml:"type,omitempty"`
	// Options constrains enum fields to a fixed set of values.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
	Help    string   `json:"help,omitempty" yaml:"help,omitempty"`
}

// Template is a document schema: a named, titled, ordered sequence of fields.
// Field order determines rendering order.
type Template struct {
	Name   string  `json:"name" yaml:"name"`
	Title  string  `json:"title" yaml:"title"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field looks up a field definition by name.
func (t Template) Field(name string) (Field, bool) {
	for _, field := range t.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Ref provides minimal metadata about an available template.
type Ref struct {
	Name  string
	Title string
}
