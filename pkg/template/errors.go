package template

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a lookup for a template name the registry never loaded.
var ErrNotFound = errors.New("template: not found")

// NotFoundError carries the missing template name. It matches ErrNotFound
// under errors.Is.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template: %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// SchemaError reports a template document that does not satisfy the expected
// shape (missing keys, bad field definitions, unparseable payload).
type SchemaError struct {
	// Path identifies the offending file within the source filesystem.
	Path   string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("template: invalid schema: %s", e.Reason)
	}
	return fmt.Sprintf("template: invalid schema in %s: %s", e.Path, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// DuplicateError reports two template documents declaring the same name.
type DuplicateError struct {
	Name string
	// Path is the file that collided; Existing is the file loaded first.
	Path     string
	Existing string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("template: duplicate template %q in %s (already declared in %s)", e.Name, e.Path, e.Existing)
}
