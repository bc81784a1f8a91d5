package llm

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaName identifies the result schema to providers that require a name.
const SchemaName = "cover_letter_response"

var (
	//go:embed schema/cover_letter.json
	schemaJSON string

	resultSchema = mustLoadSchema(schemaJSON)
)

// SchemaJSON returns the JSON Schema every completion must satisfy.
func SchemaJSON() json.RawMessage {
	return json.RawMessage(schemaJSON)
}

func mustLoadSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("load cover letter schema: %v", err))
	}
	return schema
}

// SchemaError lists the ways a model output violated the result schema.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "model output does not match schema: " + strings.Join(e.Violations, "; ")
}

// ParseResult validates raw model output against the result schema and decodes it.
// Markdown code fences around the JSON are tolerated.
func ParseResult(raw string) (CoverLetter, error) {
	cleaned := CleanJSON(raw)
	if cleaned == "" {
		return CoverLetter{}, errors.New("empty model output")
	}

	result, err := resultSchema.Validate(gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return CoverLetter{}, fmt.Errorf("model output is not valid JSON: %w", err)
	}
	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			violations = append(violations, field+": "+desc.Description())
		}
		return CoverLetter{}, &SchemaError{Violations: violations}
	}

	var out CoverLetter
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return CoverLetter{}, fmt.Errorf("decode model output: %w", err)
	}
	return out, nil
}

// CleanJSON strips surrounding whitespace and ``` / ```json fences.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
