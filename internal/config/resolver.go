package config

import (
	"fmt"

	"github.com/klejdi94/microforge-cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
	// SourcePrompt indicates value was chosen interactively.
	SourcePrompt ConfigSource = "prompt"
)

// Flag is a command-line flag value and whether the user set it explicitly.
type Flag[T any] struct {
	Value T
	Set   bool
}

// ResolvedValue is a configuration value together with its source.
type ResolvedValue[T any] struct {
	// Key is the option name.
	Key string
	// Value is the resolved value.
	Value T
	// Source indicates where the value came from.
	Source ConfigSource
}

// resolve applies precedence: explicit flag > config file > built-in default.
func resolve[T comparable](key string, flag Flag[T], configValue, defaultValue T) ResolvedValue[T] {
	var zero T
	switch {
	case flag.Set:
		return ResolvedValue[T]{Key: key, Value: flag.Value, Source: SourceFlag}
	case configValue != zero:
		return ResolvedValue[T]{Key: key, Value: configValue, Source: SourceConfig}
	default:
		return ResolvedValue[T]{Key: key, Value: defaultValue, Source: SourceDefault}
	}
}

// ResolveOptions holds the raw inputs for option resolution.
type ResolveOptions struct {
	DB     Flag[string]
	Broker Flag[string]
	CI     Flag[string]
	Auth   Flag[string]
	Git    Flag[bool]

	// Config is the loaded config file, or nil when none was loaded.
	Config *Config
}

// ResolvedOptions holds the project option values after precedence is applied.
// Values are still raw strings; the caller parses them into option types.
type ResolvedOptions struct {
	DB     ResolvedValue[string]
	Broker ResolvedValue[string]
	CI     ResolvedValue[string]
	Auth   ResolvedValue[string]
	Git    ResolvedValue[bool]
}

// ResolveNewOptions resolves every `new` option using precedence:
// (1) explicit flag, (2) config file defaults, (3) built-in default.
//
// Built-in defaults are the ones registered on the flags themselves, so the
// flag's Value doubles as the default when the flag was not set.
func ResolveNewOptions(opts ResolveOptions) ResolvedOptions {
	var d Defaults
	if opts.Config != nil {
		d = opts.Config.Defaults
	}

	return ResolvedOptions{
		DB:     resolve("db", opts.DB, d.DB, opts.DB.Value),
		Broker: resolve("broker", opts.Broker, d.Broker, opts.Broker.Value),
		CI:     resolve("ci", opts.CI, d.CI, opts.CI.Value),
		Auth:   resolve("auth", opts.Auth, d.Auth, opts.Auth.Value),
		Git:    resolve("git", opts.Git, d.Git, opts.Git.Value),
	}
}

// LogResolvedValues logs option resolution at DEBUG level.
func LogResolvedValues(r ResolvedOptions) {
	for _, v := range []ResolvedValue[string]{r.DB, r.Broker, r.CI, r.Auth} {
		output.Debug("config value resolved", "key", v.Key, "value", v.Value, "source", v.Source)
	}
	output.Debug("config value resolved", "key", r.Git.Key, "value", fmt.Sprint(r.Git.Value), "source", r.Git.Source)
}
