package errors

import (
	"fmt"
)

// ParseError represents a document or config parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document and configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError reports a failure to load a document from a git or SQL source.
type SourceError struct {
	Source string
	Ref    string
	Err    error
}

// NewSourceError constructs a SourceError.
func NewSourceError(source, ref string, err error) error {
	return &SourceError{Source: source, Ref: ref, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Ref != "" {
		return fmt.Sprintf("source error [%s@%s]: %v", e.Source, e.Ref, e.Err)
	}
	return fmt.Sprintf("source error [%s]: %v", e.Source, e.Err)
}

// Unwrap exposes the root error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError indicates that a document could not be written in the requested format.
type RenderError struct {
	Document string
	Format   string
	Message  string
	Err      error
}

// NewRenderError constructs a RenderError for the given document.
func NewRenderError(document, format string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RenderError{Document: document, Format: format, Message: message, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Document != "" {
		return fmt.Sprintf("render error [%s as %s]: %s", e.Document, e.Format, e.Message)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
