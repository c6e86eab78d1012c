// Package schemas holds the JSON Schema documents for portfolio content files.
package schemas

import _ "embed"

// Project is the JSON Schema for project front matter.
//
//go:embed project.schema.json
var Project []byte
