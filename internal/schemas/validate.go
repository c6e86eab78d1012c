// Package schemas provides JSON Schema validation for portfolio content front matter.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolveSchemaPath attempts to find a schema file by trying multiple common path resolutions.
// It tries paths relative to the current working directory, then paths relative to likely repo root locations.
// Returns the first path that exists, or empty string if none found.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	// Source names the document that failed, usually a content file path. Optional.
	Source string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field string
	// Constraint is the rule that was violated, e.g. "required", "invalid_type", "enum".
	Constraint string
	Message    string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Source != "" {
		sb.WriteString(fmt.Sprintf("validation failed for %s:\n", ve.Source))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s (%s)\n", i+1, err.Field, err.Message, err.Constraint))
	}
	return sb.String()
}

// Field returns the first error recorded for field, if any.
func (ve *ValidationError) Field(field string) (FieldError, bool) {
	for _, fe := range ve.Errors {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// newValidationError converts a failed gojsonschema result into a ValidationError.
// Missing required properties are reported on the property itself rather than its parent.
func newValidationError(result *gojsonschema.Result) *ValidationError {
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if desc.Type() == "required" {
			if property, ok := desc.Details()["property"].(string); ok {
				if field == "" || field == "(root)" {
					field = property
				} else {
					field = field + "." + property
				}
			}
		}
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:      field,
			Constraint: desc.Type(),
			Message:    desc.Description(),
		})
	}

	return validationErr
}
