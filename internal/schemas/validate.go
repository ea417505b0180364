// Package schemas validates externally supplied resume content payloads (the
// OAuth hand-off payload and the URL-fallback response) against a JSON
// Schema before assembly.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resumeContentSchema constrains the shape of the canonical sections without
// requiring any of them; partial payloads are the normal case. It exists to
// reject structurally wrong payloads ("experience": "yes") before they
// reach the assembler.
const resumeContentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "personalInfo": { "type": "object" },
    "experience": {
      "type": "array",
      "items": { "type": "object" }
    },
    "education": {
      "type": "array",
      "items": { "type": "object" }
    },
    "skills": { "type": "object" },
    "certifications": {
      "type": "array",
      "items": { "type": "object" }
    },
    "links": {
      "type": "array",
      "items": { "type": "object" }
    }
  }
}`

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema violations for one payload.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("payload validation failed:")
	for _, e := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", e.Field, e.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateResumePayload checks a JSON document against the resume content
// schema. Invalid JSON and schema violations both come back as errors; a
// nil return means the payload is safe to unmarshal into the canonical
// types.
func ValidateResumePayload(payload string) error {
	schemaLoader := gojsonschema.NewStringLoader(resumeContentSchema)
	documentLoader := gojsonschema.NewStringLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
