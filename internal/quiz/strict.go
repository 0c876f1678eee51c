package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// strictDefinition is the JSON Schema applied in strict mode. It layers
// the checks the shallow validator deliberately skips: option values
// must be strings, answers must be one of the four letters, numbers
// must be integers or strings, and title/text must be non-empty.
var strictDefinition = map[string]any{
	"type":     "object",
	"required": []any{"title", "subtitle", "questions", "solution_table"},
	"properties": map[string]any{
		"title":    map[string]any{"type": "string", "minLength": 1},
		"subtitle": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"text", "options"},
				"properties": map[string]any{
					"text": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "object",
						"required": []any{"A", "B", "C", "D"},
						"properties": map[string]any{
							"A": map[string]any{"type": "string"},
							"B": map[string]any{"type": "string"},
							"C": map[string]any{"type": "string"},
							"D": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
		"solution_table": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"number", "answer", "explanation"},
				"properties": map[string]any{
					"number":      map[string]any{"type": []any{"integer", "string"}},
					"answer":      map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
					"explanation": map[string]any{"type": "string"},
				},
			},
		},
	},
}

var (
	strictOnce     sync.Once
	strictCompiled *jsonschema.Schema
	strictErr      error
)

// ValidateStrict validates a parsed JSON value against the strict quiz
// schema. It is an optional layer on top of Validate; failures are
// reported as *SchemaError like any other schema failure.
func ValidateStrict(data map[string]any) error {
	compiled, err := compiledStrictSchema()
	if err != nil {
		return fmt.Errorf("compile strict schema: %w", err)
	}
	if err := compiled.Validate(data); err != nil {
		return &SchemaError{Reason: fmt.Sprintf("strict validation failed: %v", err)}
	}
	return nil
}

func compiledStrictSchema() (*jsonschema.Schema, error) {
	strictOnce.Do(func() {
		// The compiler expects a JSON-decoded value (numbers as
		// float64), so round-trip the Go definition through JSON.
		raw, err := json.Marshal(strictDefinition)
		if err != nil {
			strictErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			strictErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://quiz.json"
		if err := c.AddResource(url, def); err != nil {
			strictErr = fmt.Errorf("add resource: %w", err)
			return
		}
		strictCompiled, strictErr = c.Compile(url)
	})
	return strictCompiled, strictErr
}
