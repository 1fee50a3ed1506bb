package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidationError represents a single configuration validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(configSchemaURL, strings.NewReader(configSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("adding config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(configSchemaURL)
	})
	return compiledSchema, schemaErr
}

// Validate validates raw YAML config content against the embedded schema.
// An empty document is valid.
func Validate(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return ValidationErrors{{Field: "(root)", Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if document == nil {
		document = map[string]any{}
	}

	if err := sch.Validate(document); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return flatten(verr)
		}
		return err
	}
	return nil
}

// ValidateFile reads and validates the config file at path.
func ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	content, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	return Validate(content)
}

// flatten collects the leaf causes of a schema validation error.
func flatten(verr *jsonschema.ValidationError) ValidationErrors {
	var out ValidationErrors
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			field := e.InstanceLocation
			if field == "" {
				field = "(root)"
			}
			out = append(out, ValidationError{Field: field, Message: e.Message})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)

	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
