// Package config provides configuration loading and management.
package config

import (
	"github.com/klejdi94/microforge-cli/internal/options"
)

// Defaults holds default option values for `microforge new`.
// Empty strings mean "not set" and fall through to the built-in default.
type Defaults struct {
	// DB is the default database ("" or "postgres").
	DB string `mapstructure:"db" yaml:"db"`

	// Broker is the default message broker ("redis" or "kafka").
	Broker string `mapstructure:"broker" yaml:"broker"`

	// CI is the default CI provider ("azure", "github" or "gitlab").
	CI string `mapstructure:"ci" yaml:"ci"`

	// Auth is the default authentication scheme ("" or "oauth2").
	Auth string `mapstructure:"auth" yaml:"auth"`

	// Git initializes a git repository in new projects.
	Git bool `mapstructure:"git" yaml:"git"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the microforge CLI configuration.
// Loaded from ~/.microforge/config.yaml.
type Config struct {
	// Defaults contains default values for project options.
	Defaults Defaults `mapstructure:"defaults" yaml:"defaults"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `microforge config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := false
	return &Config{
		Defaults: Defaults{
			Broker: string(options.DefaultBroker),
			CI:     string(options.DefaultCI),
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}
