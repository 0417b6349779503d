// Package console provides the interactive entry point: a synchronous
// request/response loop that prompts for a template's field values, invokes
// the generator, and writes the artifact to the output directory. Each round
// is independent; the only shared state is the read-only template registry
// held by the generator.
package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	docgen "github.com/goliatone/go-docgen"
	"github.com/goliatone/go-docgen/pkg/document"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/template"
)

const exitChoice = "Exit"

// Option configures the session.
type Option func(*Session)

// WithDriver swaps the prompt driver. Tests use this to script interaction.
func WithDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputDir sets the directory generated documents are written to.
// Defaults to "output".
func WithOutputDir(dir string) Option {
	return func(s *Session) {
		if dir != "" {
			s.outputDir = dir
		}
	}
}

// WithRenderer pins the renderer used for every generated document instead
// of the generator's default.
func WithRenderer(name string) Option {
	return func(s *Session) {
		s.renderer = name
	}
}

// WithClock overrides the time source used for output file names.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Session runs the interactive document-generation loop.
type Session struct {
	gen       *docgen.Generator
	driver    PromptDriver
	outputDir string
	renderer  string
	clock     func() time.Time
}

// New constructs a Session for the given generator.
func New(gen *docgen.Generator, options ...Option) (*Session, error) {
	if gen == nil {
		return nil, errors.New("console: generator is required")
	}
	s := &Session{
		gen:       gen,
		driver:    NewSurveyDriver(),
		outputDir: "output",
		clock:     time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Run executes the menu loop until the user selects Exit or interrupts at
// the menu. An interrupt during a round only cancels that round.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("console: context is required")
	}

	refs := s.gen.Templates()
	if len(refs) == 0 {
		return errors.New("console: no templates loaded")
	}

	if err := s.driver.Info(ctx, "go-docgen - commercial document builder"); err != nil {
		return err
	}

	choices := make([]string, 0, len(refs)+1)
	for _, ref := range refs {
		choices = append(choices, fmt.Sprintf("%s (%s)", ref.Title, ref.Name))
	}
	choices = append(choices, exitChoice)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		idx, err := s.driver.Select(ctx, SelectConfig{
			Message: "What would you like to generate?",
			Options: choices,
		})
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}
		if idx < 0 || idx >= len(refs) {
			return nil
		}

		if err := s.runOnce(ctx, refs[idx].Name); err != nil {
			if errors.Is(err, ErrAborted) {
				_ = s.driver.Info(ctx, "Operation cancelled.")
				continue
			}
			return err
		}
	}
}

func (s *Session) runOnce(ctx context.Context, name string) error {
	tpl, err := s.gen.Template(name)
	if err != nil {
		return err
	}

	values, err := s.promptValues(ctx, tpl)
	if err != nil {
		return err
	}

	rendered, err := s.gen.Generate(ctx, docgen.Request{
		Template: tpl.Name,
		Values:   values,
		Renderer: s.renderer,
	})
	if err != nil {
		var validation *document.ValidationError
		if errors.As(err, &validation) {
			return s.driver.Info(ctx, "Invalid input: "+validation.Error())
		}
		return err
	}

	path, err := s.write(tpl.Name, rendered)
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, "Document written to "+path)
}

// promptValues collects one value per field, re-prompting while a required
// field stays empty. Type validation happens in the builder; parse failures
// there cancel the round with a message rather than crashing the loop.
func (s *Session) promptValues(ctx context.Context, tpl template.Template) (map[string]string, error) {
	values := make(map[string]string, len(tpl.Fields))

	for _, field := range tpl.Fields {
		value, err := s.promptField(ctx, field)
		if err != nil {
			return nil, err
		}
		if value != "" {
			values[field.Name] = value
		}
	}
	return values, nil
}

func (s *Session) promptField(ctx context.Context, field template.Field) (string, error) {
	message := field.Label
	if field.Required {
		message += " *"
	}
	help := promptHelp(field)

	for {
		var value string
		var err error

		switch field.Type {
		case template.FieldTypeBoolean:
			value, err = s.promptBoolean(ctx, message, help, field.Required)
		case template.FieldTypeEnum:
			var idx int
			idx, err = s.driver.Select(ctx, SelectConfig{Message: message, Options: field.Options, Help: help})
			if err == nil && idx >= 0 && idx < len(field.Options) {
				value = field.Options[idx]
			}
		case template.FieldTypeText:
			value, err = s.driver.TextArea(ctx, TextAreaConfig{Message: message, Help: help})
		default:
			value, err = s.driver.Input(ctx, InputConfig{Message: message, Help: help})
		}
		if err != nil {
			return "", err
		}

		if field.Required && strings.TrimSpace(value) == "" {
			if err := s.driver.Info(ctx, fmt.Sprintf("%s is required.", field.Label)); err != nil {
				return "", err
			}
			continue
		}
		return strings.TrimSpace(value), nil
	}
}

// promptBoolean confirms required booleans directly. Optional booleans get an
// explicit skip choice so they can stay out of the document like any other
// optional field.
func (s *Session) promptBoolean(ctx context.Context, message, help string, required bool) (string, error) {
	if required {
		confirmed, err := s.driver.Confirm(ctx, ConfirmConfig{Message: message, Help: help})
		if err != nil {
			return "", err
		}
		if confirmed {
			return "true", nil
		}
		return "false", nil
	}

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message: message,
		Options: []string{"Yes", "No", "Skip"},
		Help:    help,
	})
	if err != nil {
		return "", err
	}
	switch idx {
	case 0:
		return "true", nil
	case 1:
		return "false", nil
	default:
		return "", nil
	}
}

func (s *Session) write(templateName string, rendered docgen.Rendered) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("console: create output directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s%s", templateName, s.clock().Format("20060102_150405"), render.ExtensionFor(rendered.ContentType))
	path := filepath.Join(s.outputDir, filename)

	if err := os.WriteFile(path, rendered.Bytes, 0o644); err != nil {
		return "", fmt.Errorf("console: write document: %w", err)
	}
	return path, nil
}

func promptHelp(field template.Field) string {
	hint := ""
	switch field.Type {
	case template.FieldTypeCurrency:
		hint = "Decimal amount, e.g. 150.00"
	case template.FieldTypeNumber:
		hint = "Numeric value"
	case template.FieldTypeDate:
		hint = "Format YYYY-MM-DD"
	}
	if field.Help == "" {
		return hint
	}
	if hint == "" {
		return field.Help
	}
	return field.Help + " (" + hint + ")"
}
