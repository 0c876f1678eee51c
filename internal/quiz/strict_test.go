package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStrict_SamplePasses(t *testing.T) {
	data, err := Parse(SampleJSON())
	require.NoError(t, err)
	require.NoError(t, ValidateStrict(data))
}

// The shallow validator permits answers outside A-D; strict mode is the
// layered check that rejects them.
func TestValidateStrict_RejectsUnknownAnswer(t *testing.T) {
	data := validData()
	data["solution_table"] = []any{
		map[string]any{"number": float64(1), "answer": "E", "explanation": "nope"},
	}
	require.NoError(t, Validate(data))

	err := ValidateStrict(data)
	require.Error(t, err)
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Reason, "strict validation failed")
}

func TestValidateStrict_RejectsNonStringOption(t *testing.T) {
	data := validData()
	data["questions"] = []any{
		map[string]any{
			"text": "Q?",
			"options": map[string]any{
				"A": float64(1), "B": "b", "C": "c", "D": "d",
			},
		},
	}
	require.NoError(t, Validate(data))
	require.Error(t, ValidateStrict(data))
}

func TestValidateStrict_RejectsBooleanNumber(t *testing.T) {
	data := validData()
	data["solution_table"] = []any{
		map[string]any{"number": true, "answer": "A", "explanation": "x"},
	}
	require.NoError(t, Validate(data))
	require.Error(t, ValidateStrict(data))
}

func TestValidateStrict_AcceptsStringNumber(t *testing.T) {
	data := validData()
	data["solution_table"] = []any{
		map[string]any{"number": "bonus", "answer": "A", "explanation": "x"},
	}
	require.NoError(t, ValidateStrict(data))
}
