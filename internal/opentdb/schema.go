package opentdb

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema describes the shape FetchBatch accepts. Anything the
// schema rejects surfaces as a FormatError before any Question is built.
const responseSchema = `{
	"type": "object",
	"required": ["results"],
	"properties": {
		"response_code": {"type": "integer"},
		"results": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "correct_answer", "incorrect_answers"],
				"properties": {
					"question": {"type": "string"},
					"correct_answer": {"type": "string"},
					"incorrect_answers": {
						"type": "array",
						"items": {"type": "string"}
					}
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateResponse checks raw against the response schema. It returns a
// *FormatError for invalid JSON or a shape mismatch.
func validateResponse(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &FormatError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := responseValidator()
	if err != nil {
		return fmt.Errorf("compile response schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return &FormatError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// responseValidator compiles the response schema once and caches it.
func responseValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(responseSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://opentdb-response.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
