package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchLocalePath(t *testing.T) {
	tests := []struct {
		path    string
		current Locale
		want    string
	}{
		{"/es/projects/foo", ES, "/en/projects/foo"},
		{"/en/projects/foo", EN, "/es/projects/foo"},
		{"/", EN, "/es"},
		{"/", ES, "/en"},
		{"", ES, "/en"},
		{"/es", ES, "/en"},
		{"/en", EN, "/es"},
		{"/unknown/path", ES, "/en/unknown/path"},
		{"projects", EN, "/es/projects"},
		{"/es/", ES, "/en/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, SwitchLocalePath(tt.path, tt.current))
		})
	}
}

func TestWithLocale(t *testing.T) {
	tests := []struct {
		path   string
		locale Locale
		want   string
	}{
		{"/es/projects", ES, "/es/projects"},
		{"/es/projects", EN, "/en/projects"},
		{"/projects", EN, "/en/projects"},
		{"projects/foo", ES, "/es/projects/foo"},
		{"/", EN, "/en"},
		{"", ES, "/es"},
		{"/en", EN, "/en"},
	}

	for _, tt := range tests {
		t.Run(tt.path+"->"+string(tt.locale), func(t *testing.T) {
			assert.Equal(t, tt.want, WithLocale(tt.path, tt.locale))
		})
	}
}

func TestWithLocale_Idempotent(t *testing.T) {
	for _, p := range []string{"/", "/projects", "/es/about", "/en/projects/x"} {
		once := WithLocale(p, EN)
		assert.Equal(t, once, WithLocale(once, EN), p)
	}
}

func TestHomeOfAndHref(t *testing.T) {
	assert.Equal(t, "/es", HomeOf(ES))
	assert.Equal(t, "/en", HomeOf(EN))
	assert.Equal(t, "/es/projects", Href(ES, "/projects"))
	assert.Equal(t, "/en/projects/foo", Href(EN, "/es/projects/foo"))
}
