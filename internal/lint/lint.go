// Package lint checks that rendered files are well-formed for their format.
//
// Linting is structural only: a TOML file must parse as TOML, a YAML file as
// YAML, and a compose file must additionally satisfy an embedded subset of the
// compose file schema.
package lint

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// Format selects how a rendered file is checked.
type Format string

const (
	// FormatText is not checked.
	FormatText Format = "text"

	// FormatYAML must parse as one or more YAML documents.
	FormatYAML Format = "yaml"

	// FormatTOML must parse as a TOML document.
	FormatTOML Format = "toml"

	// FormatCompose must parse as YAML and satisfy the compose schema.
	FormatCompose Format = "compose"
)

// Formats returns every known format.
func Formats() []Format {
	return []Format{FormatText, FormatYAML, FormatTOML, FormatCompose}
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatYAML, FormatTOML, FormatCompose:
		return true
	default:
		return false
	}
}

// ErrInvalid is wrapped by every lint failure.
var ErrInvalid = errors.New("invalid content")

//go:embed schema/compose.schema.json
var composeSchemaJSON string

const composeSchemaURL = "https://microforge.dev/schema/compose.schema.json"

var (
	composeOnce   sync.Once
	composeSchema *jsonschema.Schema
	composeErr    error
)

// Check lints content according to format. name is used in error messages.
func Check(format Format, name string, content []byte) error {
	var err error
	switch format {
	case FormatText, "":
		return nil
	case FormatYAML:
		err = checkYAML(content)
	case FormatTOML:
		err = checkTOML(content)
	case FormatCompose:
		err = checkCompose(content)
	default:
		return fmt.Errorf("%s: unknown lint format %q", name, format)
	}

	if err != nil {
		return fmt.Errorf("%s: %w: %w", name, ErrInvalid, err)
	}
	return nil
}

func checkTOML(content []byte) error {
	var doc map[string]any
	if err := toml.Unmarshal(content, &doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("toml line %d column %d: %s", row, col, derr.Error())
		}
		return fmt.Errorf("toml: %w", err)
	}
	return nil
}

// checkYAML decodes every document in a multi-document stream.
func checkYAML(content []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
	}
}

func checkCompose(content []byte) error {
	if err := checkYAML(content); err != nil {
		return err
	}

	sch, err := loadComposeSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}

	var doc any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("decoding compose file: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("compose schema: %s", leafMessages(verr))
		}
		return err
	}
	return nil
}

func loadComposeSchema() (*jsonschema.Schema, error) {
	composeOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(composeSchemaURL, strings.NewReader(composeSchemaJSON)); err != nil {
			composeErr = fmt.Errorf("adding compose schema: %w", err)
			return
		}
		composeSchema, composeErr = compiler.Compile(composeSchemaURL)
	})
	return composeSchema, composeErr
}

// leafMessages joins the innermost causes of a validation error.
func leafMessages(verr *jsonschema.ValidationError) string {
	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msgs = append(msgs, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)
	return strings.Join(msgs, "; ")
}
