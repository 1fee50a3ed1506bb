package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/klejdi94/microforge-cli/internal/errors"
	"github.com/klejdi94/microforge-cli/internal/options"
	"github.com/klejdi94/microforge-cli/internal/version"
)

func TestBuildContext(t *testing.T) {
	req := Request{
		Name:   "My Test Service",
		Path:   "/tmp/testservice",
		DB:     options.DatabasePostgres,
		Broker: options.BrokerRedis,
		CI:     options.CIGitHub,
		Auth:   options.AuthOAuth2,
	}

	c, err := BuildContext(req)
	require.NoError(t, err)

	assert.Equal(t, "My Test Service", c.String(KeyProjectName))
	assert.Equal(t, "my_test_service", c.String(KeyProjectSlug))
	assert.Equal(t, "my-test-service", c.String(KeyProjectKebab))
	assert.Equal(t, "My Test Service", c.String(KeyProjectTitle))
	assert.Equal(t, "postgres", c.String(KeyDB))
	assert.Equal(t, "redis", c.String(KeyBroker))
	assert.Equal(t, "github", c.String(KeyCI))
	assert.Equal(t, "oauth2", c.String(KeyAuth))
	assert.Equal(t, PythonVersion, c.String(KeyPythonVersion))
	assert.Equal(t, version.Version, c.String(KeyGeneratorVersion))

	for key, want := range map[string]bool{
		KeyHasDB:       true,
		KeyHasAuth:     true,
		"use_postgres": true,
		"use_redis":    true,
		"use_kafka":    false,
		"use_azure":    false,
		"use_github":   true,
		"use_gitlab":   false,
		"use_oauth2":   true,
	} {
		got, ok := c.Bool(key)
		assert.True(t, ok, "key %s must hold a bool", key)
		assert.Equal(t, want, got, key)
	}
}

func TestBuildContext_NoOptionalValues(t *testing.T) {
	c, err := BuildContext(validRequest("/tmp/x"))
	require.NoError(t, err)

	assert.Equal(t, "", c.String(KeyDB))
	assert.Equal(t, "", c.String(KeyAuth))

	hasDB, _ := c.Bool(KeyHasDB)
	hasAuth, _ := c.Bool(KeyHasAuth)
	usePostgres, _ := c.Bool("use_postgres")
	assert.False(t, hasDB)
	assert.False(t, hasAuth)
	assert.False(t, usePostgres)
}

func TestBuildContext_ExactlyOneCI(t *testing.T) {
	for _, ci := range options.CIs() {
		t.Run(string(ci), func(t *testing.T) {
			req := validRequest("/tmp/x")
			req.CI = ci

			c, err := BuildContext(req)
			require.NoError(t, err)

			count := 0
			for _, other := range options.CIs() {
				if on, _ := c.Bool(UseKey(other)); on {
					count++
				}
			}
			assert.Equal(t, 1, count)
		})
	}
}

func TestBuildContext_Deterministic(t *testing.T) {
	req := validRequest("/tmp/x")
	req.DB = options.DatabasePostgres

	a, err := BuildContext(req)
	require.NoError(t, err)
	b, err := BuildContext(req)
	require.NoError(t, err)

	assert.Equal(t, a.Map(), b.Map())
	assert.Equal(t, a.Keys(), b.Keys())
}

func TestBuildContext_Invalid(t *testing.T) {
	req := validRequest("/tmp/x")
	req.Broker = "invalid"

	_, err := BuildContext(req)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.ErrorContains(t, err, "broker must be")
}

func TestContext_MapIsCopy(t *testing.T) {
	c, err := BuildContext(validRequest("/tmp/x"))
	require.NoError(t, err)

	m := c.Map()
	m[KeyProjectName] = "changed"

	assert.Equal(t, "testservice", c.String(KeyProjectName))
}

func TestContext_Get(t *testing.T) {
	c, err := BuildContext(validRequest("/tmp/x"))
	require.NoError(t, err)

	v, ok := c.Get(KeyBroker)
	assert.True(t, ok)
	assert.Equal(t, "redis", v)

	_, ok = c.Get("nope")
	assert.False(t, ok)

	_, ok = c.Bool(KeyBroker)
	assert.False(t, ok, "broker is a string, not a bool")
}
