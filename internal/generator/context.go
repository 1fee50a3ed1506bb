package generator

import (
	"maps"
	"slices"

	"github.com/klejdi94/microforge-cli/internal/options"
	"github.com/klejdi94/microforge-cli/internal/version"
)

// Context keys. Every use_<value> key is derived from the option value lists.
const (
	KeyProjectName      = "project_name"
	KeyProjectSlug      = "project_slug"
	KeyProjectTitle     = "project_title"
	KeyProjectKebab     = "project_kebab"
	KeyDB               = "db"
	KeyBroker           = "broker"
	KeyCI               = "ci"
	KeyAuth             = "auth"
	KeyHasDB            = "has_db"
	KeyHasAuth          = "has_auth"
	KeyPythonVersion    = "python_version"
	KeyGeneratorVersion = "generator_version"
)

// PythonVersion is the interpreter version generated projects target.
const PythonVersion = "3.12"

// UseKey returns the presence key for an option value, e.g. "use_kafka".
func UseKey[T ~string](v T) string {
	return "use_" + string(v)
}

// Context is the immutable key-value mapping templates render against.
type Context struct {
	values map[string]any
}

// BuildContext validates req and derives its rendering context.
// It has no side effects; equal requests yield equal contexts.
func BuildContext(req Request) (Context, error) {
	if err := req.Validate(); err != nil {
		return Context{}, err
	}

	v := map[string]any{
		KeyProjectName:      req.Name,
		KeyProjectSlug:      Slugify(req.Name),
		KeyProjectTitle:     Title(req.Name),
		KeyProjectKebab:     Kebab(req.Name),
		KeyDB:               string(req.DB),
		KeyBroker:           string(req.Broker),
		KeyCI:               string(req.CI),
		KeyAuth:             string(req.Auth),
		KeyHasDB:            req.DB != options.DatabaseNone,
		KeyHasAuth:          req.Auth != options.AuthNone,
		KeyPythonVersion:    PythonVersion,
		KeyGeneratorVersion: version.Version,
	}

	addUseKeys(v, options.Databases(), req.DB)
	addUseKeys(v, options.Brokers(), req.Broker)
	addUseKeys(v, options.CIs(), req.CI)
	addUseKeys(v, options.Auths(), req.Auth)

	return Context{values: v}, nil
}

func addUseKeys[T ~string](values map[string]any, all []T, selected T) {
	for _, opt := range all {
		values[UseKey(opt)] = opt == selected
	}
}

// Get returns the value stored under key.
func (c Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// String returns the string stored under key, or "" if absent or not a string.
func (c Context) String(key string) string {
	s, _ := c.values[key].(string)
	return s
}

// Bool returns the boolean stored under key. ok is false when the key is
// absent or does not hold a boolean.
func (c Context) Bool(key string) (value, ok bool) {
	value, ok = c.values[key].(bool)
	return value, ok
}

// Keys returns every key in sorted order.
func (c Context) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Map returns a copy of the underlying mapping.
func (c Context) Map() map[string]any {
	return maps.Clone(c.values)
}
