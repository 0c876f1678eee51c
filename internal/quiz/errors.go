package quiz

import "fmt"

// ParseError indicates the input text is not well-formed JSON. It is
// reported before any schema check runs.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError indicates the input parses as JSON but does not match the
// expected quiz shape. Reason names the first failing check and, where
// applicable, the offending element.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string { return e.Reason }
