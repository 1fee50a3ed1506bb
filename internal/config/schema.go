package config

import (
	_ "embed"
)

// configSchemaJSON is the JSON schema the config file is validated against.
//
//go:embed schema/config.schema.json
var configSchemaJSON string

// configSchemaURL is the resource name the schema is registered under.
const configSchemaURL = "https://microforge.dev/schema/config.schema.json"
