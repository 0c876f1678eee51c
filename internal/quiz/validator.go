package quiz

import "fmt"

// Validate checks that a parsed JSON value has the shape the assembler
// relies on. Checks run in a fixed order and short-circuit on the first
// failure with a *SchemaError naming it.
//
// Validation is deliberately shallow: it guarantees that questions can
// be iterated and options A-D indexed without missing keys, but does
// not cross-check solution rows against questions or restrict answer
// values. Callers that need stricter guarantees layer ValidateStrict on
// top.
func Validate(data map[string]any) error {
	for _, k := range RequiredKeys {
		if _, ok := data[k]; !ok {
			return &SchemaError{Reason: fmt.Sprintf("missing top-level key: %s", k)}
		}
	}

	questions, ok := data["questions"].([]any)
	if !ok || len(questions) == 0 {
		return &SchemaError{Reason: "questions must be a non-empty list"}
	}

	for i, qv := range questions {
		q, ok := qv.(map[string]any)
		if !ok {
			return &SchemaError{Reason: fmt.Sprintf("question %d must have %q and %q", i+1, "text", "options")}
		}
		if _, ok := q["text"]; !ok {
			return &SchemaError{Reason: fmt.Sprintf("question %d must have %q and %q", i+1, "text", "options")}
		}
		ov, ok := q["options"]
		if !ok {
			return &SchemaError{Reason: fmt.Sprintf("question %d must have %q and %q", i+1, "text", "options")}
		}
		opts, ok := ov.(map[string]any)
		if !ok {
			return &SchemaError{Reason: fmt.Sprintf("question %d options must include A, B, C, D", i+1)}
		}
		for _, letter := range OptionLetters {
			if _, ok := opts[letter]; !ok {
				return &SchemaError{Reason: fmt.Sprintf("question %d options must include A, B, C, D", i+1)}
			}
		}
	}

	// Solution rows are intentionally not validated individually:
	// flexible numbering and free-form answers are permitted.
	if _, ok := data["solution_table"].([]any); !ok {
		return &SchemaError{Reason: "solution_table must be a list"}
	}

	return nil
}
