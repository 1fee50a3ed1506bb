// Package options defines the closed option families accepted by the project
// generator: database, message broker, CI provider and authentication scheme.
//
// Each family is a string-backed type with a fixed set of values. Parse
// functions reject anything outside the set, and Validate re-checks a value
// that was already typed (a conversion like Broker("x") bypasses Parse).
package options

import (
	"fmt"
	"strings"

	oerrors "github.com/klejdi94/microforge-cli/internal/errors"
)

// Database selects the database integration.
type Database string

const (
	// DatabaseNone means no database module is generated.
	DatabaseNone Database = ""

	// DatabasePostgres generates a PostgreSQL module.
	DatabasePostgres Database = "postgres"
)

// Broker selects the message broker used by the worker.
type Broker string

const (
	// BrokerRedis uses Redis as the task broker.
	BrokerRedis Broker = "redis"

	// BrokerKafka uses Kafka as the task broker.
	BrokerKafka Broker = "kafka"
)

// CI selects the CI pipeline provider.
type CI string

const (
	// CIAzure generates azure-pipelines.yml.
	CIAzure CI = "azure"

	// CIGitHub generates .github/workflows/ci.yml.
	CIGitHub CI = "github"

	// CIGitLab generates .gitlab-ci.yml.
	CIGitLab CI = "gitlab"
)

// Auth selects the authentication scheme.
type Auth string

const (
	// AuthNone means no auth module is generated.
	AuthNone Auth = ""

	// AuthOAuth2 generates an OAuth2 bearer token module.
	AuthOAuth2 Auth = "oauth2"
)

// Defaults used when neither a flag nor the config file selects a value.
const (
	DefaultBroker = BrokerRedis
	DefaultCI     = CIAzure
)

// Field names as they appear in flags, config keys and error messages.
const (
	FieldDB     = "db"
	FieldBroker = "broker"
	FieldCI     = "ci"
	FieldAuth   = "auth"
)

// Databases returns every selectable database.
func Databases() []Database { return []Database{DatabasePostgres} }

// Brokers returns every selectable broker.
func Brokers() []Broker { return []Broker{BrokerRedis, BrokerKafka} }

// CIs returns every selectable CI provider.
func CIs() []CI { return []CI{CIAzure, CIGitHub, CIGitLab} }

// Auths returns every selectable authentication scheme.
func Auths() []Auth { return []Auth{AuthOAuth2} }

// ParseDatabase parses a database name. The empty string means none.
func ParseDatabase(s string) (Database, error) {
	return parse(FieldDB, s, Databases(), true)
}

// ParseBroker parses a broker name. The empty string is rejected.
func ParseBroker(s string) (Broker, error) {
	return parse(FieldBroker, s, Brokers(), false)
}

// ParseCI parses a CI provider name. The empty string is rejected.
func ParseCI(s string) (CI, error) {
	return parse(FieldCI, s, CIs(), false)
}

// ParseAuth parses an authentication scheme. The empty string means none.
func ParseAuth(s string) (Auth, error) {
	return parse(FieldAuth, s, Auths(), true)
}

// Validate reports whether d belongs to its closed set.
func (d Database) Validate() error {
	_, err := ParseDatabase(string(d))
	return err
}

// Validate reports whether b belongs to its closed set.
func (b Broker) Validate() error {
	_, err := ParseBroker(string(b))
	return err
}

// Validate reports whether c belongs to its closed set.
func (c CI) Validate() error {
	_, err := ParseCI(string(c))
	return err
}

// Validate reports whether a belongs to its closed set.
func (a Auth) Validate() error {
	_, err := ParseAuth(string(a))
	return err
}

// String returns the option value, or "none" when absent.
func (d Database) String() string { return orNone(string(d)) }

// String returns the option value.
func (b Broker) String() string { return string(b) }

// String returns the option value.
func (c CI) String() string { return string(c) }

// String returns the option value, or "none" when absent.
func (a Auth) String() string { return orNone(string(a)) }

// Strings converts a family's values to plain strings.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// parse matches s exactly (case-sensitive) against valid.
func parse[T ~string](field, s string, valid []T, optional bool) (T, error) {
	if s == "" && optional {
		return "", nil
	}
	for _, v := range valid {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, oerrors.NewValidationError(field,
		fmt.Sprintf("%s must be %s", field, quoteList(Strings(valid))),
		fmt.Sprintf("got %q", s))
}

// quoteList renders values the way the error messages list them:
// 'a' / 'a' or 'b' / 'a', 'b', or 'c'.
func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
