package quiz

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Parse unmarshals raw input into a generic JSON object. Malformed
// text is a *ParseError; well-formed JSON that is not an object is a
// *SchemaError, so the two kinds stay distinguishable.
func Parse(raw []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &ParseError{Err: err}
	}
	data, ok := v.(map[string]any)
	if !ok {
		return nil, &SchemaError{Reason: "input must be a JSON object"}
	}
	return data, nil
}

// Decode runs the full parse -> validate -> build pipeline.
func Decode(raw []byte) (Quiz, error) {
	data, err := Parse(raw)
	if err != nil {
		return Quiz{}, err
	}
	if err := Validate(data); err != nil {
		return Quiz{}, err
	}
	return FromMap(data), nil
}

// FromMap builds a typed Quiz from a validated JSON object. It must
// only be called after Validate has passed; it indexes the keys
// Validate guarantees and coerces everything else leniently (missing
// solution fields become empty strings rather than failing).
func FromMap(data map[string]any) Quiz {
	q := Quiz{
		Title:    displayText(data["title"]),
		Subtitle: displayText(data["subtitle"]),
	}

	for _, qv := range data["questions"].([]any) {
		qm := qv.(map[string]any)
		opts := qm["options"].(map[string]any)

		question := Question{
			Text:    displayText(qm["text"]),
			Options: make(map[string]string, len(OptionLetters)),
		}
		for _, letter := range OptionLetters {
			question.Options[letter] = displayText(opts[letter])
		}
		q.Questions = append(q.Questions, question)
	}

	for _, rv := range data["solution_table"].([]any) {
		row, ok := rv.(map[string]any)
		if !ok {
			q.Solutions = append(q.Solutions, SolutionRow{})
			continue
		}
		q.Solutions = append(q.Solutions, SolutionRow{
			Number:      displayText(row["number"]),
			Answer:      displayText(row["answer"]),
			Explanation: displayText(row["explanation"]),
		})
	}

	return q
}

// displayText coerces a JSON value to display text. JSON numbers that
// are whole render without a decimal point so a "number": 3 shows as
// "3", not "3.000000".
func displayText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
