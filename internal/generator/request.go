package generator

import (
	oerrors "github.com/klejdi94/microforge-cli/internal/errors"
	"github.com/klejdi94/microforge-cli/internal/options"
)

// Field names for request-level validation errors.
const (
	FieldName = "name"
	FieldPath = "path"
)

// Request describes one project to generate. It is a value type: the
// generator copies it and never mutates the caller's request.
type Request struct {
	// Name is the project name as given by the user.
	Name string

	// Path is the project root to create. It must not exist.
	Path string

	DB     options.Database
	Broker options.Broker
	CI     options.CI
	Auth   options.Auth

	// GitInit runs the VCS initializer after all files are written.
	GitInit bool
}

// Validate checks every field. The returned error wraps
// errors.ErrValidation and names the first offending field.
func (r Request) Validate() error {
	if r.Name == "" {
		return oerrors.NewValidationError(FieldName, "project name must not be empty", "")
	}
	if r.Path == "" {
		return oerrors.NewValidationError(FieldPath, "target path must not be empty", "")
	}

	for _, v := range []interface{ Validate() error }{r.DB, r.Broker, r.CI, r.Auth} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
