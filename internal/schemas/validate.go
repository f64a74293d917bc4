// Package schemas validates analysis output against embedded JSON Schemas
// before it is written to disk or returned to a caller.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_analysis.schema.json
var resumeAnalysisSchema string

//go:embed job_analysis.schema.json
var jobAnalysisSchema string

//go:embed match_result.schema.json
var matchResultSchema string

// Known schema names accepted by Validate.
const (
	SchemaResumeAnalysis = "resume_analysis"
	SchemaJobAnalysis    = "job_analysis"
	SchemaMatchResult    = "match_result"
)

var registry = map[string]string{
	SchemaResumeAnalysis: resumeAnalysisSchema,
	SchemaJobAnalysis:    jobAnalysisSchema,
	SchemaMatchResult:    matchResultSchema,
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents a failure loading or parsing a schema itself.
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a JSON document against a named embedded schema.
func Validate(schemaName string, jsonContent []byte) error {
	schema, ok := registry[schemaName]
	if !ok {
		return &SchemaLoadError{Name: schemaName, Message: "unknown schema"}
	}
	return ValidateJSONString(schema, string(jsonContent), schemaName)
}

// ValidateJSONString validates JSON content against schema content.
func ValidateJSONString(schemaContent, jsonContent, schemaName string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Name:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
