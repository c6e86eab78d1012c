// Package content loads project case studies from a content directory.
package content

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio/internal/i18n"
)

// ConfigurationError reports that none of the candidate content directories exist
type ConfigurationError struct {
	Candidates []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: no content directory found (tried %s)", strings.Join(e.Candidates, ", "))
}

// NotFoundError reports that no file variant exists for a slug
type NotFoundError struct {
	Slug   string
	Locale i18n.Locale
}

func (e *NotFoundError) Error() string {
	if e.Locale.IsZero() {
		return fmt.Sprintf("project not found: %s", e.Slug)
	}
	return fmt.Sprintf("project not found: %s (locale %s)", e.Slug, e.Locale)
}

// ParseError represents an error reading a content file or its front matter
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
