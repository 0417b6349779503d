package document

import (
	"time"

	"github.com/goliatone/go-docgen/pkg/template"
)

// Row is a single label/value line in a bound document. Value holds the
// display-formatted text, not the raw caller input.
type Row struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Document is the bound intermediate renderers consume: a titled, dated,
// ordered sequence of rows laid out per the source template's field order.
type Document struct {
	Template string    `json:"template"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Rows     []Row     `json:"rows"`
}

// Option configures the builder behaviour.
type Option func(*Builder)

// WithClock overrides the time source used to stamp bound documents. Tests
// use this to produce deterministic output.
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithCurrency overrides the currency code used when formatting currency
// fields. Defaults to EUR.
func WithCurrency(code string) Option {
	return func(b *Builder) {
		if code != "" {
			b.currency = code
		}
	}
}

// Builder validates raw value mappings against a template and binds them
// into documents. A Builder holds no per-request state, so a single instance
// is safe for concurrent use.
type Builder struct {
	clock    func() time.Time
	currency string
}

// NewBuilder constructs a Builder applying any provided options.
func NewBuilder(options ...Option) *Builder {
	b := &Builder{
		clock:    time.Now,
		currency: defaultCurrency,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Bind validates values against the template and produces a Document. Every
// required field must carry a non-empty value, and typed fields must parse;
// all failures are aggregated into a single *ValidationError. Optional
// fields with no value produce no row.
func (b *Builder) Bind(tpl template.Template, values map[string]string) (Document, error) {
	doc := Document{
		Template: tpl.Name,
		Title:    tpl.Title,
		Date:     b.clock(),
		Rows:     make([]Row, 0, len(tpl.Fields)),
	}

	var invalid []FieldError
	for _, field := range tpl.Fields {
		raw, ok := values[field.Name]
		if !ok || isBlank(raw) {
			if field.Required {
				invalid = append(invalid, FieldError{Field: field.Name, Err: ErrRequired})
			}
			continue
		}

		formatted, err := b.formatValue(field, raw)
		if err != nil {
			invalid = append(invalid, FieldError{Field: field.Name, Err: err})
			continue
		}

		doc.Rows = append(doc.Rows, Row{
			Name:  field.Name,
			Label: field.Label,
			Value: formatted,
		})
	}

	if len(invalid) > 0 {
		return Document{}, &ValidationError{Template: tpl.Name, Fields: invalid}
	}
	return doc, nil
}
