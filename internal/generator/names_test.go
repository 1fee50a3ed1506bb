package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Test Service", "my_test_service"},
		{"testservice", "testservice"},
		{"my-service", "my_service"},
		{"a  --  b", "a_b"},
		{"Service2Go", "service2go"},
		{"  padded  ", "_padded_"},
		{"café", "caf_"},
		{"!!!", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Slugify(got), "slugify must be idempotent")
		})
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Test Service", "my-test-service"},
		{"my_service", "my-service"},
		{"--edge--", "edge"},
		{"123", "123"},
		{"!!!", "service"},
		{"", "service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kebab(tt.name))
		})
	}

	t.Run("long names are capped", func(t *testing.T) {
		got := Kebab(strings.Repeat("ab-", 40))
		assert.LessOrEqual(t, len(got), 63)
		assert.False(t, strings.HasSuffix(got, "-"))
	})
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"testservice", "Testservice"},
		{"my-test_service", "My Test Service"},
		{"My Test Service", "My Test Service"},
		{"order  api", "Order Api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.name))
		})
	}
}
