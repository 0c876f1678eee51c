package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validData returns a minimal object that passes every check.
func validData() map[string]any {
	return map[string]any{
		"title":    "T",
		"subtitle": "S",
		"questions": []any{
			map[string]any{
				"text": "Q1?",
				"options": map[string]any{
					"A": "a", "B": "b", "C": "c", "D": "d",
				},
			},
		},
		"solution_table": []any{
			map[string]any{"number": float64(1), "answer": "A", "explanation": "because"},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validData()))
}

func TestValidate_MissingTopLevelKeys(t *testing.T) {
	for _, key := range RequiredKeys {
		t.Run(key, func(t *testing.T) {
			data := validData()
			delete(data, key)
			err := Validate(data)
			require.Error(t, err)

			var serr *SchemaError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, fmt.Sprintf("missing top-level key: %s", key), serr.Reason)
		})
	}
}

func TestValidate_EmptyQuestions(t *testing.T) {
	data := validData()
	data["questions"] = []any{}
	err := Validate(data)
	require.Error(t, err)
	assert.Equal(t, "questions must be a non-empty list", err.Error())
}

func TestValidate_QuestionsNotAList(t *testing.T) {
	data := validData()
	data["questions"] = "nope"
	err := Validate(data)
	require.Error(t, err)
	assert.Equal(t, "questions must be a non-empty list", err.Error())
}

func TestValidate_QuestionMissingText(t *testing.T) {
	data := validData()
	data["questions"] = []any{
		data["questions"].([]any)[0],
		map[string]any{"options": map[string]any{"A": "", "B": "", "C": "", "D": ""}},
	}
	err := Validate(data)
	require.Error(t, err)
	assert.Equal(t, `question 2 must have "text" and "options"`, err.Error())
}

func TestValidate_QuestionMissingOptions(t *testing.T) {
	data := validData()
	data["questions"] = []any{map[string]any{"text": "Q?"}}
	err := Validate(data)
	require.Error(t, err)
	assert.Equal(t, `question 1 must have "text" and "options"`, err.Error())
}

func TestValidate_OptionsMissingLetter(t *testing.T) {
	for _, letter := range OptionLetters {
		t.Run(letter, func(t *testing.T) {
			opts := map[string]any{"A": "a", "B": "b", "C": "c", "D": "d"}
			delete(opts, letter)
			data := validData()
			data["questions"] = []any{
				map[string]any{"text": "Q?", "options": opts},
			}
			err := Validate(data)
			require.Error(t, err)
			assert.Equal(t, "question 1 options must include A, B, C, D", err.Error())
		})
	}
}

func TestValidate_OptionsNotAMapping(t *testing.T) {
	data := validData()
	data["questions"] = []any{
		map[string]any{"text": "Q?", "options": []any{"a", "b", "c", "d"}},
	}
	err := Validate(data)
	require.Error(t, err)
	assert.Equal(t, "question 1 options must include A, B, C, D", err.Error())
}

func TestValidate_SolutionTableNotAList(t *testing.T) {
	data := validData()
	data["solution_table"] = map[string]any{}
	err := Validate(data)
	require.Error(t, err)
	assert.Equal(t, "solution_table must be a list", err.Error())
}

// Solution rows are intentionally not validated individually: arbitrary
// numbering, answers outside A-D, and missing fields all pass.
func TestValidate_SolutionRowsArePermissive(t *testing.T) {
	data := validData()
	data["solution_table"] = []any{
		map[string]any{"number": "extra credit", "answer": "E", "explanation": ""},
		map[string]any{},
		"not even an object",
	}
	require.NoError(t, Validate(data))
}

func TestValidate_SamplePasses(t *testing.T) {
	data, err := Parse(SampleJSON())
	require.NoError(t, err)
	require.NoError(t, Validate(data))
}

// Parse failures and schema failures must stay distinguishable: a file
// that is valid JSON but the wrong shape is a SchemaError, while
// malformed text is a ParseError.
func TestParseAndSchemaErrorsDistinct(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	var serr *SchemaError
	assert.False(t, errors.As(err, &serr))

	data, err := Parse([]byte(`{"title": "only a title"}`))
	require.NoError(t, err)
	err = Validate(data)
	require.True(t, errors.As(err, &serr))
	assert.False(t, errors.As(err, &perr))
}
