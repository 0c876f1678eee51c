package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdoc/quizdoc/internal/layout"
	"github.com/quizdoc/quizdoc/internal/quiz"
)

func TestWritePDF_Sample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.pdf")
	doc := layout.BuildDocument(quiz.Sample())

	require.NoError(t, WritePDF(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestWritePDF_EmptySolutionTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty-solutions.pdf")
	q := quiz.Sample()
	q.Solutions = nil

	require.NoError(t, WritePDF(path, layout.BuildDocument(q)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWritePDF_UnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.pdf")
	err := WritePDF(path, layout.BuildDocument(quiz.Sample()))
	require.Error(t, err)

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, path, werr.Path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial file may be left behind")
}

func TestWritePDF_LongExplanationWraps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.pdf")
	q := quiz.Sample()
	long := ""
	for i := 0; i < 40; i++ {
		long += "a rather long explanation that must wrap across several lines "
	}
	q.Solutions = append(q.Solutions, quiz.SolutionRow{Number: "6", Answer: "A", Explanation: long})

	require.NoError(t, WritePDF(path, layout.BuildDocument(q)))
}
