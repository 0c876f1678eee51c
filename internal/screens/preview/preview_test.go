package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdoc/quizdoc/internal/layout"
	"github.com/quizdoc/quizdoc/internal/quiz"
)

func TestOutline_Sample(t *testing.T) {
	doc := layout.BuildDocument(quiz.Sample())
	lines := Outline(doc)

	require.NotEmpty(t, lines)
	assert.Equal(t, "Document title: Networking - Practice Quiz (5 Questions)", lines[0])

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "HEADING  Questions")
	assert.Contains(t, joined, "HEADING  Solution Table")
	assert.Contains(t, joined, "TABLE    # | Answer | Explanation")
	assert.Contains(t, joined, "1. Which OSI layer is responsible for routing?")
	assert.Contains(t, joined, "    B) Network")

	pageBreaks := strings.Count(joined, "page break")
	assert.Equal(t, 2, pageBreaks)
}

func TestOutline_TableRowsExpanded(t *testing.T) {
	q := quiz.Sample()
	lines := Outline(layout.BuildDocument(q))

	var rowLines int
	for _, l := range lines {
		if strings.HasPrefix(l, "         ") && strings.Contains(l, " | ") {
			rowLines++
		}
	}
	assert.Equal(t, len(q.Solutions), rowLines)
}

func TestScrollClamping(t *testing.T) {
	s := New(layout.BuildDocument(quiz.Sample()))
	s.height = 10

	s.scroll(-5)
	assert.Equal(t, 0, s.offset)

	s.scroll(1 << 20)
	assert.Equal(t, len(s.lines)-10, s.offset)
}
