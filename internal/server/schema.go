package server

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_schema.json
var resumeSchemaJSON string

// SchemaValidationError collects the field-level failures from schema validation.
type SchemaValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume document failed schema validation:")
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// validateResumeDocument checks the raw request body against the embedded
// resume JSON Schema before unmarshalling, so shape errors surface with
// field paths instead of decode failures.
func validateResumeDocument(body []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(resumeSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate resume document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &SchemaValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
