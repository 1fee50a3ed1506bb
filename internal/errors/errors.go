// Package errors provides sentinel errors and structured error types for the
// microforge CLI.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an option or project name outside its allowed set.
	ErrValidation = errors.New("validation error")

	// ErrAlreadyExists indicates the target project path is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrTemplate indicates a defect in the embedded templates or the manifest:
	// an unknown context key, a parse failure, or output that does not lint.
	ErrTemplate = errors.New("template error")

	// ErrNotFound indicates a file was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes. Every failure exits with ExitGeneralError; the kind of failure
// is conveyed by the printed message.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates the command failed.
	ExitGeneralError = 1
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path or template id (optional).
	Location string

	// Field is the offending option name for validation errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}
	if e.Field != "" {
		b.WriteString("\n  Field: ")
		b.WriteString(e.Field)
	}
	for _, k := range sortedKeys(e.Context) {
		b.WriteString("\n  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
	}
	if e.Hint != "" {
		b.WriteString("\n\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error naming the offending field.
func NewValidationError(field, message, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewConflictError creates an error for a target path that is already present.
func NewConflictError(path string) error {
	return &DetailError{
		Type:     "directory conflict",
		Message:  fmt.Sprintf("directory '%s' already exists", path),
		Location: path,
		Hint:     "Choose a different project name or remove the existing directory.",
		Cause:    ErrAlreadyExists,
	}
}

// NewTemplateError creates an internal template error for the given template id.
func NewTemplateError(templateID string, cause error) error {
	return &DetailError{
		Type:     "internal template error",
		Message:  cause.Error(),
		Location: templateID,
		Hint:     "This is a defect in microforge itself; please report it.",
		Cause:    fmt.Errorf("%w: %w", ErrTemplate, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError carries a process exit code alongside the underlying error.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is true when the command layer already reported the error,
	// so main must not print it again.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
