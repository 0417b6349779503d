package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-docgen/pkg/template"
)

// ErrRequired marks a required field with no usable value.
var ErrRequired = errors.New("document: required value is missing")

// TypeMismatchError reports a supplied value that fails its field's
// type-specific parsing (non-numeric currency, malformed date, ...).
type TypeMismatchError struct {
	Field  string
	Type   template.FieldType
	Value  string
	Reason string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("document: field %q: %s value %q %s", e.Field, e.Type, e.Value, e.Reason)
}

// FieldError pairs a field name with the failure observed for it.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError aggregates every field failure found while binding a value
// mapping to a template. All missing and invalid fields are reported, not
// just the first. Unwrap exposes the individual failures so errors.Is and
// errors.As reach ErrRequired and *TypeMismatchError through it.
type ValidationError struct {
	Template string
	Fields   []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document: template %q: invalid fields: %s", e.Template, strings.Join(e.FieldNames(), ", "))
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, fe := range e.Fields {
		errs = append(errs, fe)
	}
	return errs
}

// FieldNames lists the offending field names in template order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		names = append(names, fe.Field)
	}
	return names
}
