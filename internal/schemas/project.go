package schemas

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/jonathan/portfolio/internal/types"
	schemafiles "github.com/jonathan/portfolio/schemas"
	"github.com/xeipuuv/gojsonschema"
)

var (
	projectSchemaOnce sync.Once
	projectSchema     *gojsonschema.Schema
	projectSchemaErr  error
)

// loadProjectSchema compiles the embedded project schema once.
func loadProjectSchema() (*gojsonschema.Schema, error) {
	projectSchemaOnce.Do(func() {
		projectSchema, projectSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemafiles.Project))
		if projectSchemaErr != nil {
			projectSchemaErr = &SchemaLoadError{
				Path:    "project.schema.json",
				Message: "failed to compile embedded schema",
				Cause:   projectSchemaErr,
			}
		}
	})
	return projectSchema, projectSchemaErr
}

// ProjectValidator checks front matter against a compiled project schema.
type ProjectValidator struct {
	schema *gojsonschema.Schema
}

// LoadProjectValidator compiles the project schema stored at path. The path is
// located with ResolveSchemaPath, so a repo-relative path works from nested
// working directories.
func LoadProjectValidator(path string) (*ProjectValidator, error) {
	resolved := ResolveSchemaPath(path)
	if resolved == "" {
		return nil, &SchemaLoadError{Path: path, Message: "schema file not found"}
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(resolved)))
	if err != nil {
		return nil, &SchemaLoadError{Path: resolved, Message: "failed to compile schema", Cause: err}
	}
	return &ProjectValidator{schema: schema}, nil
}

// ValidateProject checks decoded front matter against the embedded project
// schema and returns the typed project. Localized fields may be plain values
// or objects keyed by locale. Top-level keys with a null value are treated as absent.
func ValidateProject(meta map[string]any) (*types.Project, error) {
	schema, err := loadProjectSchema()
	if err != nil {
		return nil, err
	}
	return (&ProjectValidator{schema: schema}).Validate(meta)
}

// Validate checks meta against the validator's schema and decodes it.
func (v *ProjectValidator) Validate(meta map[string]any) (*types.Project, error) {
	doc := normalizeDocument(meta)

	result, err := v.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, &ValidationError{Errors: []FieldError{{
			Field:      "(root)",
			Constraint: "invalid_document",
			Message:    err.Error(),
		}}}
	}
	if !result.Valid() {
		return nil, newValidationError(result)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}

	var project types.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to decode front matter: %w", err)
	}
	if project.Stack == nil {
		project.Stack = []string{}
	}

	return &project, nil
}

// normalizeDocument prepares YAML-decoded data for JSON handling: maps with
// non-string keys get string keys, and null top-level values are dropped.
func normalizeDocument(meta map[string]any) map[string]any {
	doc := make(map[string]any, len(meta))
	for k, v := range meta {
		if v == nil {
			continue
		}
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return val
	}
}
