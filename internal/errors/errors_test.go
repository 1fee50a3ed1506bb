//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrAlreadyExists)
	assert.NotEqual(t, ErrValidation, ErrTemplate)
	assert.NotEqual(t, ErrAlreadyExists, ErrTemplate)
	assert.NotEqual(t, ErrTemplate, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "broker must be 'redis' or 'kafka'",
		Location: "/tmp/svc",
		Field:    "broker",
		Context:  map[string]string{"Value": "invalid", "Command": "new"},
		Hint:     "Pass --broker redis",
	}

	output := detail.Error()

	assert.Contains(t, output, "validation failed: broker must be 'redis' or 'kafka'")
	assert.Contains(t, output, "Location: /tmp/svc")
	assert.Contains(t, output, "Field: broker")
	assert.Contains(t, output, "Value: invalid")
	assert.Contains(t, output, "Hint: Pass --broker redis")
	assert.Less(t, strings.Index(output, "Command"), strings.Index(output, "Value"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("ci", "ci must be 'azure', 'github', or 'gitlab'", "")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "ci", detail.Field)
	assert.Contains(t, err.Error(), "ci must be")
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("/work/testservice")

	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "already exists")
	assert.Contains(t, err.Error(), "/work/testservice")
}

func TestNewTemplateError(t *testing.T) {
	cause := fmt.Errorf(`map has no entry for key "missing"`)
	err := NewTemplateError("app/main.py.tmpl", cause)

	assert.True(t, errors.Is(err, ErrTemplate))
	assert.Contains(t, err.Error(), "internal template error")
	assert.Contains(t, err.Error(), "app/main.py.tmpl")
	assert.Contains(t, err.Error(), "missing")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "config file missing")

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "config file missing")
}

func TestExitError(t *testing.T) {
	inner := NewConflictError("svc")
	exitErr := &ExitError{Code: ExitGeneralError, Err: inner, Printed: true}

	assert.Equal(t, inner.Error(), exitErr.Error())
	assert.True(t, errors.Is(exitErr, ErrAlreadyExists))

	var target *ExitError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", exitErr), &target))
	assert.Equal(t, 1, target.Code)
	assert.True(t, target.Printed)

	assert.Equal(t, "exit code 1", (&ExitError{Code: 1}).Error())
}
