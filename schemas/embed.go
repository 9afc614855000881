// Package schemas holds the JSON Schema files describing the documents exchanged
// with the rendering service.
package schemas

import _ "embed"

// ResumeDocument is the JSON Schema for a resume document.
//
//go:embed resume_document.schema.json
var ResumeDocument string
