package generator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"k8s.io/apimachinery/pkg/util/validation"
)

// fallbackKebab is used when a project name yields no valid DNS label.
const fallbackKebab = "service"

// Slugify lowercases name and collapses every run of characters outside
// [a-z0-9] into a single underscore. It is idempotent.
//
//	Slugify("My Test Service") == "my_test_service"
func Slugify(name string) string {
	return collapse(strings.ToLower(name), '_')
}

// Kebab derives a Kubernetes-safe resource name from name: lowercase, runs of
// characters outside [a-z0-9] collapsed to '-', no leading or trailing '-',
// at most 63 characters. It returns "service" when nothing valid remains.
func Kebab(name string) string {
	s := strings.Trim(collapse(strings.ToLower(name), '-'), "-")
	if len(s) > validation.DNS1123LabelMaxLength {
		s = strings.TrimRight(s[:validation.DNS1123LabelMaxLength], "-")
	}
	if len(validation.IsDNS1123Label(s)) > 0 {
		return fallbackKebab
	}
	return s
}

// Title returns a display title for name, treating '-' and '_' as word
// separators: "my-test_service" becomes "My Test Service".
func Title(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '\t'
	})
	return cases.Title(language.Und).String(strings.Join(words, " "))
}

// collapse replaces each maximal run of bytes outside [a-z0-9] with sep.
// Input must already be lowercased.
func collapse(s string, sep byte) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			b.WriteByte(c)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte(sep)
			inRun = true
		}
	}
	return b.String()
}
