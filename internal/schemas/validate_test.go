package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strictSchema additionally requires a role on every project.
const strictSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["title", "slug", "role"],
	"properties": {
		"title": {"type": ["string", "object"]},
		"slug": {"type": "string"},
		"role": {"type": ["string", "object"]}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProjectValidator(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "strict.schema.json", strictSchema)

	v, err := LoadProjectValidator(schemaPath)
	require.NoError(t, err)

	project, err := v.Validate(map[string]any{"title": "Shop", "slug": "shop", "role": "Dev"})
	require.NoError(t, err)
	assert.Equal(t, "shop", project.Slug)
	assert.Equal(t, []string{}, project.Stack)

	_, err = v.Validate(map[string]any{"title": "Shop", "slug": "shop"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	fe, found := validationErr.Field("role")
	require.True(t, found, "missing property should be reported on the property")
	assert.Equal(t, "required", fe.Constraint)
}

func TestLoadProjectValidator_RepoSchema(t *testing.T) {
	v, err := LoadProjectValidator(filepath.Join("schemas", "project.schema.json"))
	require.NoError(t, err)

	_, err = v.Validate(map[string]any{"title": "x", "slug": "x", "stack": "Go"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	fe, found := validationErr.Field("stack")
	require.True(t, found)
	assert.Equal(t, "invalid_type", fe.Constraint)
}

func TestLoadProjectValidator_NotFound(t *testing.T) {
	_, err := LoadProjectValidator(filepath.Join(t.TempDir(), "missing.schema.json"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadProjectValidator_InvalidSchema(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "broken.schema.json", `{ invalid json }`)

	_, err := LoadProjectValidator(schemaPath)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Source: "content/projects/foo.mdx",
		Errors: []FieldError{
			{Field: "title", Constraint: "required", Message: "title is required"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "content/projects/foo.mdx")
	assert.Contains(t, msg, "1. title: title is required (required)")
}

func TestResolveSchemaPath(t *testing.T) {
	assert.NotEmpty(t, ResolveSchemaPath(filepath.Join("schemas", "project.schema.json")),
		"the repo schema should be found from the package directory")
	assert.Empty(t, ResolveSchemaPath("does/not/exist.json"))
}
